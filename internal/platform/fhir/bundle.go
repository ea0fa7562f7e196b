package fhir

import (
	"encoding/json"
	"strconv"
)

// Pagination tag systems. A paginated listing Bundle carries exactly
// three meta.tag entries under these systems.
const (
	TagSystemTotalPages  = "http://example.org/fhir/CodeSystem/pagination-total-pages"
	TagSystemCurrentPage = "http://example.org/fhir/CodeSystem/pagination-current-page"
	TagSystemPageSize    = "http://example.org/fhir/CodeSystem/pagination-page-size"
)

// Pagination defaults applied when the caller supplies no page or limit.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Bundle wraps a collection of resources plus pagination metadata.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type"`
	Total        int           `json:"total"`
	Meta         *Meta         `json:"meta,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	FullURL  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}

// NewPagedBundle builds a searchset Bundle for one page of a listing.
// Total is the caller-supplied total item count, not len(resources):
// the entries may be a single page of a larger result. meta.tag carries
// totalPages, page, and limit as string codes under fixed systems.
func NewPagedBundle(resources []interface{}, page, limit, total int) *Bundle {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &Bundle{
		ResourceType: TypeBundle,
		Type:         "searchset",
		Total:        total,
		Meta: &Meta{
			Tag: []Coding{
				{System: TagSystemTotalPages, Code: strconv.Itoa(totalPages)},
				{System: TagSystemCurrentPage, Code: strconv.Itoa(page)},
				{System: TagSystemPageSize, Code: strconv.Itoa(limit)},
			},
		},
		Entry: buildEntries(resources),
	}
}

// NewCollectionBundle builds a collection Bundle, used for profile-style
// groupings where every entry describes one logical record.
func NewCollectionBundle(resources []interface{}) *Bundle {
	return &Bundle{
		ResourceType: TypeBundle,
		Type:         "collection",
		Total:        len(resources),
		Entry:        buildEntries(resources),
	}
}

func buildEntries(resources []interface{}) []BundleEntry {
	entries := make([]BundleEntry, 0, len(resources))
	for _, r := range resources {
		raw, err := json.Marshal(r)
		if err != nil {
			continue
		}
		entries = append(entries, BundleEntry{
			FullURL:  fullURLOf(raw),
			Resource: raw,
		})
	}
	return entries
}

// fullURLOf derives "ResourceType/id" from a marshaled resource, or ""
// when either part is missing.
func fullURLOf(raw []byte) string {
	var head struct {
		ResourceType string `json:"resourceType"`
		ID           string `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	if head.ResourceType == "" || head.ID == "" {
		return ""
	}
	return FormatReference(head.ResourceType, head.ID)
}

// ResourceTypeOf resolves the resourceType discriminator of a raw
// resource, or "" when it is absent or the payload is not an object.
func ResourceTypeOf(raw json.RawMessage) string {
	var head struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	return head.ResourceType
}

// PageTags reads the three pagination tags back out of a Bundle,
// applying the documented defaults for any that are absent.
func (b *Bundle) PageTags() (totalPages, page, limit int) {
	totalPages, page, limit = 0, DefaultPage, DefaultLimit
	if b == nil || b.Meta == nil {
		return
	}
	for _, tag := range b.Meta.Tag {
		n, err := strconv.Atoi(tag.Code)
		if err != nil {
			continue
		}
		switch tag.System {
		case TagSystemTotalPages:
			totalPages = n
		case TagSystemCurrentPage:
			page = n
		case TagSystemPageSize:
			limit = n
		}
	}
	return
}

// ParseBundle unwraps a Bundle into its raw resources. Absent entry
// lists and entries without a resource are tolerated, not errors.
func ParseBundle(b *Bundle) []json.RawMessage {
	if b == nil {
		return nil
	}
	out := make([]json.RawMessage, 0, len(b.Entry))
	for _, e := range b.Entry {
		if len(e.Resource) == 0 || string(e.Resource) == "null" {
			continue
		}
		out = append(out, e.Resource)
	}
	return out
}

// ParseBundleJSON decodes a raw Bundle payload and unwraps it. A payload
// that is not a Bundle at all yields an empty result, never an error.
func ParseBundleJSON(raw json.RawMessage) []json.RawMessage {
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	return ParseBundle(&b)
}

// EachResource dispatches every recognizable entry of a raw Bundle to fn
// along with its resourceType. Entries with no resolvable resourceType
// are skipped so one malformed entry cannot abort the batch.
func EachResource(raw json.RawMessage, fn func(resourceType string, resource json.RawMessage)) {
	for _, res := range ParseBundleJSON(raw) {
		rt := ResourceTypeOf(res)
		if rt == "" {
			continue
		}
		fn(rt, res)
	}
}
