package connectors

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/seetoh/jobscout/internal/fetch"
	"github.com/seetoh/jobscout/internal/types"
)

// jobPosting holds the fields worth extracting from a schema.org JobPosting
// JSON-LD block. Any field may be absent.
type jobPosting struct {
	Employer    types.Text
	Posted      types.Date
	Closing     types.Date
	Salary      types.Text
	Type        types.JobType
	Description string
}

// findJobPosting scans the page's JSON-LD scripts for the first JobPosting
// object, descending into @graph containers and top-level arrays.
func findJobPosting(doc *goquery.Document) (jobPosting, bool) {
	var found jobPosting
	ok := false
	doc.Find(`script[type='application/ld+json']`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return true
		}
		for _, obj := range jsonldCandidates(data) {
			if typ, _ := obj["@type"].(string); strings.EqualFold(typ, "jobposting") {
				found = parseJobPosting(obj)
				ok = true
				return false
			}
		}
		return true
	})
	return found, ok
}

// jsonldCandidates flattens a JSON-LD document (object, array, or @graph)
// into the list of objects to inspect.
func jsonldCandidates(data any) []map[string]any {
	switch v := data.(type) {
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			return anySliceToObjects(graph)
		}
		return []map[string]any{v}
	case []any:
		return anySliceToObjects(v)
	default:
		return nil
	}
}

func anySliceToObjects(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func parseJobPosting(obj map[string]any) jobPosting {
	jp := jobPosting{}

	if org, ok := obj["hiringOrganization"].(map[string]any); ok {
		if name, ok := org["name"].(string); ok {
			jp.Employer = types.NewText(fetch.CleanText(name))
		}
	}
	if posted, ok := obj["datePosted"].(string); ok {
		jp.Posted = types.ParseDate(posted)
	}
	if closing, ok := obj["validThrough"].(string); ok {
		jp.Closing = types.ParseDate(closing)
	}
	jp.Salary = parseBaseSalary(obj["baseSalary"])
	jp.Type = parseEmploymentType(obj["employmentType"])
	if desc, ok := obj["description"].(string); ok {
		jp.Description = desc
	}
	return jp
}

// parseBaseSalary normalizes the schema.org MonetaryAmount shapes sources
// actually emit: a plain string, or nested {currency, value:{minValue,
// maxValue, unitText}} objects with numbers or strings inside.
func parseBaseSalary(raw any) types.Text {
	switch bs := raw.(type) {
	case string:
		return types.NewText(fetch.CleanText(bs))
	case map[string]any:
		currency, _ := bs["currency"].(string)
		value := bs["value"]
		if nested, ok := value.(map[string]any); ok {
			if currency == "" {
				currency, _ = nested["currency"].(string)
			}
			if currency == "" {
				currency = "SGD"
			}
			unit, _ := nested["unitText"].(string)
			low := jsonNumber(nested["minValue"])
			high := jsonNumber(nested["maxValue"])
			switch {
			case low != "" && high != "":
				return types.NewText(fetch.CleanText(fmt.Sprintf("%s %s-%s %s", currency, low, high, unit)))
			case low != "":
				return types.NewText(fetch.CleanText(fmt.Sprintf("%s %s %s", currency, low, unit)))
			case high != "":
				return types.NewText(fetch.CleanText(fmt.Sprintf("%s %s %s", currency, high, unit)))
			}
			return types.Text{}
		}
		if flat := jsonNumber(value); flat != "" {
			if currency == "" {
				currency = "SGD"
			}
			return types.NewText(fmt.Sprintf("%s %s", currency, flat))
		}
	}
	return types.Text{}
}

// jsonNumber renders a JSON scalar as a compact string, dropping the
// trailing ".00" style noise float64 decoding introduces.
func jsonNumber(v any) string {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%g", n)
	case string:
		return strings.TrimSpace(n)
	default:
		return ""
	}
}

// parseEmploymentType maps schema.org employmentType (string or array) onto
// the job-type vocabulary.
func parseEmploymentType(raw any) types.JobType {
	switch et := raw.(type) {
	case string:
		return types.ClassifyJobType(et)
	case []any:
		parts := make([]string, 0, len(et))
		for _, item := range et {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return types.ClassifyJobType(strings.Join(parts, " / "))
	default:
		return types.JobTypeUnknown
	}
}
