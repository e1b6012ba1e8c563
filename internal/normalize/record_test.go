package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	line := []byte(`{"user_id": 42, "updated_ts": 1700000000.5, "language": "en", "data": {"work": []}}`)
	rec, err := ParseRecord(line, 3)
	require.NoError(t, err)
	assert.Equal(t, "42", rec.UserID, "numeric user ids should decode as strings")
	assert.Equal(t, 1700000000.5, rec.UpdatedTS)
	assert.Equal(t, "en", rec.Language)
	assert.Equal(t, 3, rec.Index)
	assert.NotNil(t, rec.Data)
}

func TestParseRecordMalformed(t *testing.T) {
	_, err := ParseRecord([]byte(`{not json`), 0)
	assert.Error(t, err)
}

func TestReadRecordsSkipsBlankLines(t *testing.T) {
	input := strings.NewReader(`{"user_id": "a", "updated_ts": 1}

{"user_id": "b", "updated_ts": 2}
`)
	records, err := ReadRecords(input)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].UserID)
	assert.Equal(t, "b", records[1].UserID)
}

func TestDedupKeepsLatestPerUser(t *testing.T) {
	records := []Record{
		{UserID: "u1", UpdatedTS: 10},
		{UserID: "u2", UpdatedTS: 5},
		{UserID: "u1", UpdatedTS: 20},
		{UserID: "u3", UpdatedTS: 1},
	}
	out := Dedup(records)

	require.Len(t, out, 3, "output count must not exceed input count")
	byUser := make(map[string]float64)
	for _, rec := range out {
		_, seen := byUser[rec.UserID]
		assert.False(t, seen, "user ids must be unique after dedup")
		byUser[rec.UserID] = rec.UpdatedTS
	}
	assert.Equal(t, 20.0, byUser["u1"], "the record with the larger updated_ts survives")
}

func TestPrepare(t *testing.T) {
	t.Run("nil data is dropped", func(t *testing.T) {
		rec := &Record{UserID: "u"}
		assert.Nil(t, Prepare(rec, false))
	})

	t.Run("empty record is dropped", func(t *testing.T) {
		rec := &Record{Data: Mapping{"basics": Mapping{"name": Scalar{V: "x"}}}}
		assert.Nil(t, Prepare(rec, false))
	})

	t.Run("non-english is filtered when requested", func(t *testing.T) {
		rec := &Record{
			Language: "de",
			Data:     Mapping{"work": Sequence{Mapping{"position": Scalar{V: "dev"}}}},
		}
		assert.Nil(t, Prepare(rec, true))
		assert.NotNil(t, Prepare(rec, false))
	})

	t.Run("noise keys are removed and dates parsed", func(t *testing.T) {
		rec := &Record{
			Data: Mapping{
				"Meta": Scalar{V: "noise"},
				"Work": Sequence{Mapping{
					"Position":  Scalar{V: "engineer"},
					"StartDate": Scalar{V: "2020-03-15"},
				}},
			},
		}
		m := Prepare(rec, false)
		require.NotNil(t, m)
		assert.NotContains(t, m, "meta")

		work := m["work"].(Sequence)
		entry := work[0].(Mapping)
		date := entry["startdate"].(Scalar)
		assert.NotNil(t, date.V, "parseable dates should become year-month values")
	})
}
