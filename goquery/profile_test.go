package goquery_test

import (
	"testing"

	"github.com/fwojciec/captaingang"
	"github.com/fwojciec/captaingang/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileExtractor() *goquery.ProfileExtractor {
	return goquery.NewProfileExtractor(goquery.DefaultSelectors(), captaingang.DefaultVocabulary())
}

func TestProfileExtractor_ExtractProfile(t *testing.T) {
	t.Parallel()

	t.Run("extracts captain and co-captain teams in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<table>
	<tr><td><a href="teaminfo.asp?id=100">Team Alpha - Captain</a></td></tr>
	<tr><td><a href="teaminfo.asp?id=300">Team Gamma</a></td></tr>
	<tr><td><a href="teaminfo.asp?id=200">Team Beta - Co-Captain</a></td></tr>
</table>
</body>
</html>`

		profile := newProfileExtractor().ExtractProfile(html)

		require.Len(t, profile.Teams, 2)
		assert.Equal(t, "100", profile.Teams[0].ID)
		assert.Equal(t, "Team Alpha - Captain", profile.Teams[0].Name)
		assert.Equal(t, "https://leagues.ustanorcal.com/teaminfo.asp?id=100", profile.Teams[0].URL)
		assert.Equal(t, "200", profile.Teams[1].ID)
		assert.True(t, profile.Teams[1].IsCoCaptain())
	})

	t.Run("drops team links without a numeric id", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="teaminfo.asp?id=abc">Team Alpha - Captain</a>
<a href="teaminfo.asp">Team Beta - Captain</a>
<a href="teaminfo.asp?id=7">Team Gamma - Captain</a>
</body></html>`

		profile := newProfileExtractor().ExtractProfile(html)

		require.Len(t, profile.Teams, 1)
		assert.Equal(t, "7", profile.Teams[0].ID)
	})

	t.Run("keeps duplicate team links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="teaminfo.asp?id=100">Team Alpha - Captain</a>
<a href="teaminfo.asp?id=100">Team Alpha - Captain</a>
</body></html>`

		profile := newProfileExtractor().ExtractProfile(html)

		assert.Len(t, profile.Teams, 2)
	})

	t.Run("resolves team links against the configured base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/teaminfo.asp?id=9">Team - Captain</a></body></html>`
		e := goquery.NewProfileExtractor(
			goquery.DefaultSelectors().WithBaseURL("http://127.0.0.1:8080"),
			captaingang.DefaultVocabulary(),
		)

		profile := e.ExtractProfile(html)

		require.Len(t, profile.Teams, 1)
		assert.Equal(t, "http://127.0.0.1:8080/teaminfo.asp?id=9", profile.Teams[0].URL)
	})

	t.Run("finds captain name in headings skipping site vocabulary", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>USTA Northern California</h1>
<h2>Player Matches</h2>
<b>Doe,  Jane</b>
<table><tr><td>Roe, John</td></tr></table>
</body></html>`

		profile := newProfileExtractor().ExtractProfile(html)

		assert.Equal(t, "Doe, Jane", profile.CaptainName)
	})

	t.Run("falls back to the first table for captain name", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Leagues</h1>
<table>
	<tr><th>Rating Expiration</th><td>Doe, Jane</td></tr>
</table>
<table><tr><td>Roe, John</td></tr></table>
</body></html>`

		profile := newProfileExtractor().ExtractProfile(html)

		assert.Equal(t, "Doe, Jane", profile.CaptainName)
	})

	t.Run("leaves captain name empty when none is found", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Matches</h1><table><tr><td>3.5</td></tr></table></body></html>`

		profile := newProfileExtractor().ExtractProfile(html)

		assert.Empty(t, profile.CaptainName)
		assert.Empty(t, profile.Teams)
	})

	t.Run("returns empty profile for empty markup", func(t *testing.T) {
		t.Parallel()

		profile := newProfileExtractor().ExtractProfile("")

		require.NotNil(t, profile)
		assert.Empty(t, profile.Teams)
		assert.Empty(t, profile.CaptainName)
	})
}
