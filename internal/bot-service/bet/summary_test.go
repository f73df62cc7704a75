package bet

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(number, amount, sender string) Record {
	return Record{Number: number, Amount: amount, Sender: sender}
}

func TestSummarizeNoData(t *testing.T) {
	report, ok := Summarize(nil, false)
	assert.False(t, ok)
	assert.Empty(t, report)

	report, ok = Summarize([]Record{}, true)
	assert.False(t, ok)
	assert.Empty(t, report)
}

func TestSummarizeTotalMode(t *testing.T) {
	records := []Record{
		rec("51", "100", "aung"),
		rec("05", "200", "mya"),
		rec("51", "300", "mya"),
		rec("05", "50", "aung"),
	}

	report, ok := Summarize(records, false)
	require.True(t, ok)
	assert.Equal(t, "05 - 250\n51 - 400", report)
}

func TestSummarizeTotalModeSortsByNumberString(t *testing.T) {
	records := []Record{
		rec("99", "1", "a"),
		rec("00", "1", "a"),
		rec("10", "1", "a"),
		rec("09", "1", "a"),
	}

	report, ok := Summarize(records, false)
	require.True(t, ok)
	assert.Equal(t, []string{"00 - 1", "09 - 1", "10 - 1", "99 - 1"}, strings.Split(report, "\n"))
}

func TestSummarizePerUserKeepsFirstAppearanceOrder(t *testing.T) {
	records := []Record{
		rec("22", "100", "mya"),
		rec("22", "200", "aung"),
		rec("07", "50", "zaw"),
		rec("22", "300", "mya"),
	}

	report, ok := Summarize(records, true)
	require.True(t, ok)
	// números ordenados; dentro do 22, mya apostou primeiro e aparece primeiro
	assert.Equal(t, "07 -> zaw: 50\n22 -> mya: 400; aung: 200", report)
}

func TestSummarizeNonNumericAmountCountsAsZero(t *testing.T) {
	records := []Record{
		rec("22", "100", "mya"),
		rec("22", "oops", "mya"),
		rec("22", "", "aung"),
	}

	report, ok := Summarize(records, false)
	require.True(t, ok)
	assert.Equal(t, "22 - 100", report)
}

// A soma por número do modo total tem que bater com a soma dos remetentes
// do modo por usuário para o mesmo conjunto de registros.
func TestSummarizeModesAgree(t *testing.T) {
	records := []Record{
		rec("22", "100", "mya"),
		rec("22", "200", "aung"),
		rec("07", "50", "zaw"),
		rec("22", "300", "mya"),
		rec("07", "25", "zaw"),
	}

	total, ok := Summarize(records, false)
	require.True(t, ok)
	perUser, ok := Summarize(records, true)
	require.True(t, ok)

	totalByNumber := map[string]int64{}
	for _, line := range strings.Split(total, "\n") {
		parts := strings.Split(line, " - ")
		require.Len(t, parts, 2)
		v, err := strconv.ParseInt(parts[1], 10, 64)
		require.NoError(t, err)
		totalByNumber[parts[0]] = v
	}

	for _, line := range strings.Split(perUser, "\n") {
		parts := strings.Split(line, " -> ")
		require.Len(t, parts, 2)
		var sum int64
		for _, entry := range strings.Split(parts[1], "; ") {
			kv := strings.Split(entry, ": ")
			require.Len(t, kv, 2)
			v, err := strconv.ParseInt(kv[1], 10, 64)
			require.NoError(t, err)
			sum += v
		}
		assert.Equal(t, totalByNumber[parts[0]], sum, "number %s", parts[0])
	}
}

func TestSummarizeIsPureGivenSameInput(t *testing.T) {
	records := []Record{
		rec("22", "100", "mya"),
		rec("07", "50", "zaw"),
	}
	records[0].CreatedAt = time.Date(2025, 3, 1, 4, 0, 0, 0, time.UTC)

	a, _ := Summarize(records, true)
	b, _ := Summarize(records, true)
	assert.Equal(t, a, b)
}
