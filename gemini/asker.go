package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hfal/kursdoc"
)

const model = "gemini-2.5-flash"

// defaultK is how many documents ground an answer when the question
// names no specific course or program code.
const defaultK = 5

// Ensure Asker implements kursdoc.Asker at compile time.
var _ kursdoc.Asker = (*Asker)(nil)

// Asker implements kursdoc.Asker using Google Gemini. Questions that
// name a course or program code are answered from that code's
// documents; otherwise the nearest documents by embedding similarity
// ground the answer.
type Asker struct {
	client   *genai.Client
	docs     kursdoc.DocumentService
	embedder kursdoc.Embedder
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, docs kursdoc.DocumentService, embedder kursdoc.Embedder) *Asker {
	return &Asker{client: client, docs: docs, embedder: embedder}
}

// Ask answers a natural language question about crawled courses and
// programs.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", kursdoc.Errorf(kursdoc.EINVALID, "question required")
	}

	docs, err := a.retrieve(ctx, question)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", kursdoc.Errorf(kursdoc.ENOTFOUND, "no matching documents; run 'kursdoc ingest' first")
	}

	prompt := BuildUserPrompt(docs, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", kursdoc.Errorf(kursdoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// retrieve selects the documents grounding the answer. A recognized
// business code restricts retrieval to that code's documents; the
// similarity ranking then picks among its revisions.
func (a *Asker) retrieve(ctx context.Context, question string) ([]*kursdoc.Document, error) {
	query, err := a.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, err
	}

	codes := kursdoc.ExtractCodes(question)
	switch {
	case len(codes.CourseCodes) > 0:
		kind := kursdoc.KindCourse
		return a.docs.SearchDocuments(ctx, query, codes.Count(), kursdoc.DocumentFilter{
			Kind: &kind,
			Code: &codes.CourseCodes[0],
		})
	case len(codes.ProgramCodes) > 0:
		kind := kursdoc.KindProgram
		return a.docs.SearchDocuments(ctx, query, codes.Count(), kursdoc.DocumentFilter{
			Kind: &kind,
			Code: &codes.ProgramCodes[0],
		})
	}
	return a.docs.SearchDocuments(ctx, query, defaultK, kursdoc.DocumentFilter{})
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an assistant helping answer questions about university courses and programs at Mälardalens universitet (MDU). " +
					"Answer the question by providing relevant information from the context, ensuring the response is accurate and helpful. " +
					"Use the correct course or program codes when referring to specific courses or programs. " +
					"Refer to the university as Mälardalens universitet or MDU. Do not use MDH or Mälardalens Högskola, as these are old abbreviations. " +
					"Answer in the same language as the question provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the retrieved
// course and program context and the question.
func BuildUserPrompt(docs []*kursdoc.Document, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, doc := range docs {
		title := doc.Name
		if title == "" {
			title = doc.Code
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<kind>%s</kind>\n", doc.Kind)
		fmt.Fprintf(&sb, "<code>%s</code>\n", doc.Code)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", doc.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
