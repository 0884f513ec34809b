// Package extract turns unstructured housing text into validated candidate
// records using the Claude API. The catalog constrains what the model may
// produce; every proposed entity is decoded and validated before it is
// handed to the graph writer, and rejected entities are reported rather
// than silently dropped.
package extract

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/campuskg/hallgraph/internal/catalog"
	"github.com/campuskg/hallgraph/internal/hierarchy"
	"github.com/campuskg/hallgraph/internal/metrics"
	"github.com/campuskg/hallgraph/internal/schema"
)

// maxSpanChars caps the text span embedded in the prompt so the guidance
// section is never crowded out of the context window.
const maxSpanChars = 24000

// extractionPromptTemplate constrains the model to the catalog's shapes.
// User content is injected via an XML tag to prevent prompt injection.
const extractionPromptTemplate = `You are an entity extraction system for a university housing knowledge graph. Analyze the text and extract structured entities.

Only the following entity types are recognized. Use the exact type names and field names listed; omit fields the text does not support rather than guessing.

%s
For each entity return:
- type: one of the entity type names above
- fields: an object with that type's fields
- edges: an array (may be empty) of relationships to other extracted entities, each with:
  - kind: one of CONTAINS, LOCATED_IN, PART_OF, PRECEDES, ASSIGNED_TO, LOCATED_AT, OCCURS_DURING
  - target_type: the entity type of the related entity
  - target_name: the identifying field value of the related entity

Prefer edges over parent-name fields for containment: a room belongs to a building via a LOCATED_IN edge, not just a building_name value.

Return a JSON array of entities. If no entities are found, return [].

<content>%s</content>

Extract entities as JSON array:`

// rawEntity is the JSON shape returned by Claude for one entity.
type rawEntity struct {
	Type   string         `json:"type"`
	Fields map[string]any `json:"fields"`
	Edges  []rawEdge      `json:"edges"`
}

type rawEdge struct {
	Kind       string `json:"kind"`
	TargetType string `json:"target_type"`
	TargetName string `json:"target_name"`
}

// ProposedEdge is a relationship the extraction engine proposed between an
// extracted record and another entity. Legality is judged by the graph
// writer via hierarchy.IsLegalEdge before persistence.
type ProposedEdge struct {
	Kind       hierarchy.EdgeKind `json:"kind"`
	TargetType string             `json:"target_type"`
	TargetName string             `json:"target_name"`
}

// Record is a decoded, validated record ready for the graph writer.
type Record struct {
	ID     string         `json:"id"`
	Record schema.Record  `json:"-"`
	Edges  []ProposedEdge `json:"edges,omitempty"`
}

// Rejection explains why one proposed entity was not accepted. The wrapped
// error is catalog.ErrUnknownType, a *schema.StructuralError, or a
// *schema.ValidationError; callers may re-prompt with adjusted guidance.
type Rejection struct {
	Index    int
	TypeName string
	Err      error
}

// Extractor extracts catalog-conforming entities from text using Claude.
type Extractor struct {
	client  *anthropic.Client
	model   string
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewExtractor creates an extractor backed by the Claude API and
// constrained to the given catalog.
func NewExtractor(apiKey, model string, cat *catalog.Catalog, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Extractor{
		client:  &c,
		model:   model,
		catalog: cat,
		logger:  logger,
	}
}

// Extract runs the extraction engine over span and returns the accepted
// records alongside per-entity rejections. A record is either fully valid
// or fully rejected; nothing is coerced into a best-effort partial node.
func (e *Extractor) Extract(ctx context.Context, span string) ([]Record, []Rejection, error) {
	metrics.Inc(metrics.ExtractTotal)

	prompt := fmt.Sprintf(extractionPromptTemplate, Guidance(e.catalog), xmlEscape(truncateSpan(span, maxSpanChars)))

	resp, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
		System: []anthropic.TextBlockParam{
			{Text: "You are a precise entity extraction system. Output only valid JSON."},
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("extract: Claude API: %w", err)
	}

	var responseText string
	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			responseText = resp.Content[i].Text
			break
		}
	}
	if responseText == "" {
		return nil, nil, fmt.Errorf("extract: empty response from Claude")
	}

	e.logger.Debug("extraction response", "response", responseText)

	var raw []rawEntity
	if jsonErr := json.Unmarshal([]byte(responseText), &raw); jsonErr != nil {
		return nil, nil, fmt.Errorf("extract: parsing response: %w (raw: %s)", jsonErr, responseText)
	}

	return e.screen(raw)
}

// screen decodes and validates each proposed entity against the catalog.
func (e *Extractor) screen(raw []rawEntity) ([]Record, []Rejection, error) {
	var accepted []Record
	var rejected []Rejection

	for i := range raw {
		def, err := e.catalog.Lookup(raw[i].Type)
		if err != nil {
			metrics.Inc(metrics.UnknownTypeDrops)
			e.logger.Warn("extract: unsupported entity type proposed", "type", raw[i].Type)
			rejected = append(rejected, Rejection{Index: i, TypeName: raw[i].Type, Err: err})
			continue
		}

		rec, err := def.Decode(raw[i].Fields)
		if err != nil {
			metrics.Inc(metrics.StructuralRejects)
			e.logger.Warn("extract: malformed entity", "type", raw[i].Type, "error", err)
			rejected = append(rejected, Rejection{Index: i, TypeName: raw[i].Type, Err: err})
			continue
		}

		if err := def.Validate(rec); err != nil {
			metrics.Inc(metrics.RuleRejects)
			e.logger.Warn("extract: entity failed validation", "type", raw[i].Type, "error", err)
			rejected = append(rejected, Rejection{Index: i, TypeName: raw[i].Type, Err: err})
			continue
		}

		metrics.Inc(metrics.RecordsAccepted)
		accepted = append(accepted, Record{
			ID:     uuid.New().String(),
			Record: rec,
			Edges:  e.mapEdges(raw[i].Type, raw[i].Edges),
		})
	}

	e.logger.Info("extracted entities", "accepted", len(accepted), "rejected", len(rejected))
	return accepted, rejected, nil
}

// mapEdges keeps proposed edges with recognized kinds and known target
// types. Legality of the (from, to, kind) triple is left to the graph
// writer, which is the component that must gate persistence.
func (e *Extractor) mapEdges(fromType string, edges []rawEdge) []ProposedEdge {
	var out []ProposedEdge
	for i := range edges {
		kind := hierarchy.EdgeKind(edges[i].Kind)
		if !kind.IsValid() {
			e.logger.Warn("extract: dropping edge with unknown kind", "kind", edges[i].Kind, "from", fromType)
			continue
		}
		if _, err := e.catalog.Lookup(edges[i].TargetType); err != nil {
			e.logger.Warn("extract: dropping edge with unknown target type", "target_type", edges[i].TargetType, "from", fromType)
			continue
		}
		out = append(out, ProposedEdge{
			Kind:       kind,
			TargetType: edges[i].TargetType,
			TargetName: edges[i].TargetName,
		})
	}
	return out
}

// xmlEscape replaces characters that have special meaning in XML to
// prevent prompt injection when embedding user content in XML-delimited
// templates.
func xmlEscape(s string) string {
	var buf strings.Builder
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// truncateSpan cuts the span to at most maxChars runes at a word boundary.
func truncateSpan(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	cut := string(runes[:maxChars])
	if idx := strings.LastIndex(cut, " "); idx > maxChars/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}
