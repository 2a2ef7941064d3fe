package testutils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/icrowley/fake"
	"github.com/oklog/ulid/v2"
	"syreclabs.com/go/faker"

	filter "github.com/krew-solutions/searchfilter-go/searchfilter/domain"
)

// NewContactDocs generates n contact documents for evaluator and
// translation tests. Identifiers are ULIDs minted from each document's
// createdAt, so lexicographic id order equals creation order; createdAt
// values are distinct, spaced one day apart from start.
func NewContactDocs(n int, start time.Time) []filter.Document {
	rng := rand.New(rand.NewSource(int64(n)))
	docs := make([]filter.Document, n)
	for i := range docs {
		createdAt := start.AddDate(0, 0, i)
		docs[i] = filter.Document{
			"id":        ulid.MustNew(ulid.Timestamp(createdAt), rng).String(),
			"firstName": fake.FirstName(),
			"lastName":  fake.LastName(),
			"email":     fake.EmailAddress(),
			"company":   faker.Company().Name(),
			"createdAt": createdAt,
			"customFields": []filter.Document{
				{"id": uuid.NewString(), "value": faker.Lorem().Word()},
			},
		}
	}
	return docs
}
