package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Audience identifies the requester segment a question or service belongs to.
type Audience string

const (
	// AudienceWorker represents an individual employee.
	AudienceWorker Audience = "worker"
	// AudienceEmployer represents a business owner or manager.
	AudienceEmployer Audience = "employer"
)

// Category is the coarse topical bucket assigned to a question or example.
type Category string

const (
	CategoryWageArrears        Category = "wage_arrears"
	CategoryDismissal          Category = "dismissal"
	CategoryHarassment         Category = "harassment"
	CategoryIndustrialAccident Category = "industrial_accident"
	CategoryContract           Category = "contract"
	CategoryOther              Category = "other"
)

// Categories lists all valid categories in a fixed order.
// Vote tallies iterate this slice so ties resolve deterministically.
var Categories = []Category{
	CategoryWageArrears,
	CategoryDismissal,
	CategoryHarassment,
	CategoryIndustrialAccident,
	CategoryContract,
	CategoryOther,
}

// Provenance records where an example came from.
type Provenance string

const (
	// ProvenanceSeed marks hand-curated examples shipped with the binary.
	ProvenanceSeed Provenance = "seed"
	// ProvenanceLearned marks examples mined from accepted recommendations.
	ProvenanceLearned Provenance = "learned"
	// ProvenanceMismatchAutofix marks examples derived from audit mismatches.
	ProvenanceMismatchAutofix Provenance = "mismatch_autofix"
)

// Example is a labeled problem statement used for similarity matching.
// Learned examples additionally carry an observation count and the time
// the underlying session was last seen.
type Example struct {
	Text       string     `json:"text"`
	Audience   Audience   `json:"audience"`
	Category   Category   `json:"category"`
	Services   []string   `json:"services"` // primary service first
	Provenance Provenance `json:"provenance"`
	Count      int        `json:"count,omitempty"`
	LastSeen   time.Time  `json:"last_seen,omitempty"`
}

// Key returns a deterministic aggregation key for the example.
// Two examples with the same audience, category, text and primary
// service share a key.
func (e *Example) Key() ID {
	primary := ""
	if len(e.Services) > 0 {
		primary = e.Services[0]
	}
	return IDFromContent(string(e.Audience) + "|" + string(e.Category) + "|" + e.Text + "|" + primary)
}

// ServiceEntry is one offering in the service catalog.
// Entries are owned by the catalog collaborator and read-only here.
type ServiceEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Audience    Audience `json:"audience"`
	Keywords    []string `json:"keywords"`
}

// EventType identifies the kind of a session event.
type EventType string

const (
	EventSituationSubmitted EventType = "situation_submitted"
	EventOptionsGenerated   EventType = "options_generated"
	EventOptionSelected     EventType = "option_selected"
	EventOptionClicked      EventType = "option_clicked"
)

// EventPayload is the tagged union of per-event-type data.
// Exactly one variant is attached to each SessionEvent; consumers
// type-switch over the variants instead of probing optional fields.
type EventPayload interface {
	EventType() EventType
}

// SituationSubmitted carries the free-text problem statement a user entered.
type SituationSubmitted struct {
	Text string
}

func (SituationSubmitted) EventType() EventType { return EventSituationSubmitted }

// OptionsGenerated carries the services that were offered to the user.
type OptionsGenerated struct {
	Services []string
}

func (OptionsGenerated) EventType() EventType { return EventOptionsGenerated }

// OptionSelected carries the service the user explicitly confirmed.
type OptionSelected struct {
	Service string
}

func (OptionSelected) EventType() EventType { return EventOptionSelected }

// OptionClicked carries the service the user clicked through to.
type OptionClicked struct {
	Service string
}

func (OptionClicked) EventType() EventType { return EventOptionClicked }

// SessionEvent is one append-only row of the session event log.
type SessionEvent struct {
	Id        ID
	SessionId string
	Step      int
	Audience  Audience // may be empty when the segment was not yet known
	Payload   EventPayload
	CreatedAt time.Time
}

// MatchResult is the outcome of the runtime classification call.
// Audience and Category are empty when the classifier abstained;
// ServiceScores may still carry accumulated votes in that case.
type MatchResult struct {
	Audience      Audience           `json:"audience,omitempty"`
	Category      Category           `json:"category,omitempty"`
	TopService    string             `json:"top_service"`
	Confidence    float64            `json:"confidence"`
	ServiceScores map[string]float64 `json:"service_scores"`
}
