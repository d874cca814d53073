package journal

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// trackerDocument is the persisted form of a Tracker.
type trackerDocument struct {
	Pending     []Recommendation `json:"pending"`
	Implemented []Recommendation `json:"implemented"`
	Rejected    []Recommendation `json:"rejected"`
	Unknown     []Recommendation `json:"unknown"`
	Stats       Stats            `json:"stats"`
}

func (t *Tracker) encode() ([]byte, error) {
	doc := trackerDocument{
		Pending:     t.Records(Pending),
		Implemented: t.Records(Implemented),
		Rejected:    t.Records(Rejected),
		Unknown:     t.Records(Unknown),
		Stats:       t.stats,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// decode replaces the tracker content with the document in data. Records are
// placed in the partition they were persisted in, which also sets their
// status, and the counters are taken as persisted.
func (t *Tracker) decode(data []byte) error {
	var doc trackerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	t.book = newRecommendationBook()
	for s, records := range map[Status][]Recommendation{
		Pending:     doc.Pending,
		Implemented: doc.Implemented,
		Rejected:    doc.Rejected,
		Unknown:     doc.Unknown,
	} {
		for _, r := range records {
			r.Status = s
			t.book.Append(s.String(), r)
		}
	}
	t.stats = doc.Stats
	return nil
}
