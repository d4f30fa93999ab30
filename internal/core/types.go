package core

const (
	ServiceName      = "memberqa"
	ServiceUserAgent = "MemberQA/0.1"
	ServiceVersion   = "0.1.0"
)

// AbstainAnswer is the deliberate "no answer" response. It is a successful
// outcome, not an error: the pipeline returns it whenever the evidence is
// missing or ambiguous instead of guessing.
const AbstainAnswer = "I don't know based on the available messages."

// Message is the canonical shape of one upstream record after normalization.
// Text is guaranteed non-empty; MemberID and MemberName may be blank.
type Message struct {
	MemberID   string `json:"member_id,omitempty"`
	MemberName string `json:"member_name"`
	Text       string `json:"text"`
	Timestamp  any    `json:"timestamp,omitempty"`
}

// QuestionKind is the closed set of question categories the pipeline
// distinguishes. Exactly one kind applies to any question.
type QuestionKind int

const (
	KindOther QuestionKind = iota
	KindNumeric
	KindWhen
	KindWhere
	KindFavorite
)

func (k QuestionKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindWhen:
		return "when"
	case KindWhere:
		return "where"
	case KindFavorite:
		return "favorite"
	default:
		return "other"
	}
}

// FactLike reports whether a failed extraction for this kind must abstain
// rather than fall back to a raw snippet.
func (k QuestionKind) FactLike() bool {
	switch k {
	case KindNumeric, KindWhen, KindWhere, KindFavorite:
		return true
	default:
		return false
	}
}

// RankedDoc is one ranked entry: the index of a document in the search
// space together with its similarity score to the query.
type RankedDoc struct {
	Index int
	Score float64
}
