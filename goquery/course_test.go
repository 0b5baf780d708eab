package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hfal/kursdoc"
	"github.com/hfal/kursdoc/goquery"
)

const courseHTML = `<!DOCTYPE html>
<html><head><title>Kursplan - Datastrukturer - Mälardalens universitet</title></head>
<body>
<h1 class="mdh-header-break-word">Kursplan - Datastrukturer</h1>
<div class="mdh-details-block">
	<div class="mdh-details-block__item">
		<div class="mdh-details-block__header">Kurskod</div>
		<div class="mdh-details-block__content">DVA117</div>
	</div>
	<div class="mdh-details-block__item">
		<div class="mdh-details-block__header">Giltig från</div>
		<div class="mdh-details-block__content">Hösttermin 2019</div>
	</div>
	<div class="mdh-details-block__item">
		<div class="mdh-details-block__header">Visa tidigare/senare versioner</div>
		<div class="mdh-details-block__content">Välj version</div>
	</div>
</div>
<div class="mdh-text-section">
	<h2>Innehåll</h2>
	<p>Grundläggande datastrukturer.</p>
	<p>Algoritmanalys och komplexitet.</p>
</div>
<div class="mdh-text-section">
	<h2>Examination</h2>
	<p>Skriftlig tentamen, 4,5 hp.</p>
	<p>Betygsskala anges i kursplanen.</p>
</div>
<div class="mdh-text-section">
	<h2>Förkunskapskrav</h2>
	Grundläggande behörighet samt Programmering.
</div>
<div class="mdh-text-section">
	<h2>Betyg</h2>
	<p>Tregradig skala.</p>
</div>
</body></html>`

func TestCourseExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts a full course page", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewCourseExtractor().Extract(courseHTML, 23000)
		require.NoError(t, err)

		require.Equal(t, "23000", rec.SourceID())
		require.Equal(t, "Datastrukturer", rec.GetString(kursdoc.FieldName))
		require.True(t, rec.IsActive())
		require.True(t, rec.IsValid())

		require.Equal(t, "DVA117", rec.GetString(kursdoc.FieldCourseCode))
		require.Equal(t, "Hösttermin 2019", rec.GetString(kursdoc.FieldValidFrom))

		require.Equal(t, "Grundläggande datastrukturer. Algoritmanalys och komplexitet.",
			rec.GetString(kursdoc.FieldContent))
		require.Equal(t, "Skriftlig tentamen, 4,5 hp.", rec.GetString("examination"))
		require.Equal(t, "Grundläggande behörighet samt Programmering.",
			rec.GetString("förkunskapskrav"))
	})

	t.Run("skips version navigation in the details block", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewCourseExtractor().Extract(courseHTML, 23000)
		require.NoError(t, err)
		require.NotContains(t, rec, "visa tidigare/senare versioner")
	})

	t.Run("skips administrative sections", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewCourseExtractor().Extract(courseHTML, 23000)
		require.NoError(t, err)
		require.NotContains(t, rec, "betyg")
	})

	t.Run("flags plans that are no longer current", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h1 class="mdh-header-break-word">Kursplan - Datastrukturer</h1>
			<p>Denna kursplan är inte aktuell och ges inte längre.</p>
			</body></html>`
		rec, err := goquery.NewCourseExtractor().Extract(html, 23001)
		require.NoError(t, err)
		require.False(t, rec.IsActive())
	})

	t.Run("stops section content at the next heading", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="mdh-text-section">
				<h2>Mål</h2>
				<p>Efter kursen kan studenten analysera algoritmer.</p>
				<h2>Särskild behörighet</h2>
				<p>Matematik 3b.</p>
			</div>
			</body></html>`
		rec, err := goquery.NewCourseExtractor().Extract(html, 23002)
		require.NoError(t, err)
		require.Equal(t, "Efter kursen kan studenten analysera algoritmer.", rec.GetString("mål"))
		require.NotContains(t, rec, "särskild behörighet")
	})

	t.Run("does not descend into nested section markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="mdh-text-section">
				<h2>Mål</h2>
				<p>Ett stycke.</p>
				<div><ul><li>punkt ett</li><li>punkt två</li></ul></div>
			</div>
			</body></html>`
		rec, err := goquery.NewCourseExtractor().Extract(html, 23003)
		require.NoError(t, err)
		require.Equal(t, "Ett stycke.", rec.GetString("mål"))
	})

	t.Run("handles a title shorter than the label", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1 class="mdh-header-break-word">Kursplan</h1></body></html>`
		rec, err := goquery.NewCourseExtractor().Extract(html, 23004)
		require.NoError(t, err)
		require.Equal(t, "", rec.GetString(kursdoc.FieldName))
	})
}
