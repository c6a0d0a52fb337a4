package problems

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordsMapsAliasedColumns(t *testing.T) {
	records := [][]string{
		{"ID", "Title", "Acceptance", "Difficulty", "Frequency"},
		{"1", "Two Sum", "49%", "Easy", "3.2"},
		{"", "", "", "", ""},
		{"146", "LRU Cache", "41%", "Medium", "2.8"},
	}

	problems := parseRecords(records)

	require.Len(t, problems, 2)
	assert.Equal(t, Problem{ID: "1", Name: "Two Sum", Frequency: "3.2", Difficulty: "Easy"}, problems[0])
	assert.Equal(t, Problem{ID: "146", Name: "LRU Cache", Frequency: "2.8", Difficulty: "Medium"}, problems[1])
}

func TestParseRecordsAppliesDefaults(t *testing.T) {
	records := [][]string{
		{"Problem Name"},
		{"Two Sum"},
		{"3Sum"},
	}

	problems := parseRecords(records)

	require.Len(t, problems, 2)
	assert.Equal(t, Problem{ID: "1", Name: "Two Sum", Frequency: "1", Difficulty: "Unknown"}, problems[0])
	assert.Equal(t, "2", problems[1].ID)
}

func TestParseRecordsHeaderOnly(t *testing.T) {
	assert.Empty(t, parseRecords([][]string{{"name", "difficulty"}}))
	assert.Empty(t, parseRecords(nil))
}

func TestResolveColumnsExactAliases(t *testing.T) {
	indexes := resolveColumns([]string{"No", "Problem", "Occurrences"})
	assert.Equal(t, 0, indexes[colID])
	assert.Equal(t, 1, indexes[colName])
	assert.Equal(t, 2, indexes[colFrequency])
	assert.Equal(t, -1, indexes[colDifficulty])
}

func TestFetchCompany(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Google.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ID,Title,Difficulty,Frequency\n1,Two Sum,Easy,3.2\n"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	problems, err := client.FetchCompany(context.Background(), "Google")
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, "Two Sum", problems[0].Name)

	_, err = client.FetchCompany(context.Background(), "Nowhere")
	assert.Error(t, err)
}

func TestFilterCompanies(t *testing.T) {
	assert.Len(t, FilterCompanies(""), len(Companies))
	assert.Equal(t, []string{"Google"}, FilterCompanies("goog"))
	assert.Empty(t, FilterCompanies("definitely not a company"))
}

func TestKnownCompany(t *testing.T) {
	assert.True(t, KnownCompany("Google"))
	assert.False(t, KnownCompany("google"))
}

func TestLeetCodeURL(t *testing.T) {
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", LeetCodeURL("Two Sum"))
	assert.Equal(t, "https://leetcode.com/problems/best-time-to-buy-and-sell-stock-ii/",
		LeetCodeURL("Best Time to Buy and Sell Stock II"))
	assert.Equal(t, "https://leetcode.com/problems/3sum/", LeetCodeURL("3Sum"))
	assert.Equal(t, "", LeetCodeURL(""))
}
