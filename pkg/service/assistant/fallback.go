package assistant

import (
	"hash/fnv"
	"strings"
)

// Responder produces deterministic assistant replies without an LLM. Replies
// are chosen by keyword category; within a category the variant is picked by
// a hash of the message, so the same question always gets the same answer.
type Responder struct{}

func New() *Responder {
	return &Responder{}
}

type rule struct {
	keywords []string
	variants []string
}

var rules = []rule{
	{
		keywords: []string{"hello", "hi ", "good morning", "good afternoon"},
		variants: []string{
			"Hello! I can help you with hazard inventories, risk scoring and report generation. What do you need?",
			"Hi! Ask me about your company's hazards, risk levels or the risk management program document.",
		},
	},
	{
		keywords: []string{"score", "probability", "severity", "matrix", "band", "level"},
		variants: []string{
			"Risk is scored by multiplying probability by severity, both graded 1 to 5. The product places the hazard in one of five bands: up to 4 is very low, up to 8 low, up to 15 medium, up to 20 high, and above that very high.",
			"Each hazard gets a probability and a severity between 1 and 5. Their product determines the risk band, from very low (4 or less) to very high (above 20). The band defines which control actions are required.",
		},
	},
	{
		keywords: []string{"inventory", "entry", "entries", "version"},
		variants: []string{
			"A hazard inventory is a versioned list of risk entries for one company. You can create a new version, clone an existing one, and add, edit, duplicate or remove entries.",
			"Inventories are versioned per company. Cloning an inventory starts a new draft version with copies of all entries, so you can review them without touching the original.",
		},
	},
	{
		keywords: []string{"suggest", "suggestion", "automatic"},
		variants: []string{
			"If the company has a market segment assigned, I can pre-fill its inventory with the hazards associated to that segment, including suggested protection measures and expected injuries. Suggested entries start with probability and severity 3 and must be reviewed.",
			"Hazard suggestions come from the segment-norm associations of the company's segment. Pairs already present in the inventory are skipped, so suggesting twice never duplicates entries.",
		},
	},
	{
		keywords: []string{"report", "document", "pgr", "program", "pdf"},
		variants: []string{
			"The risk management program document has eight sections: cover, introduction, methodology, evaluation scales, risk matrix, company characterization, hazard inventory and action plan. It is generated from an inventory and its company data.",
			"To generate the program document you need a company and at least one hazard inventory. The action plan section lists every hazard above the lowest band, ordered by risk value.",
		},
	},
	{
		keywords: []string{"norm", "regulation", "nr"},
		variants: []string{
			"Regulatory norms link dangers to the injuries they can cause and the protection measures they require. Deleting a norm also removes all of its danger links.",
			"Each norm detail connects one norm to one danger, with its expected injuries and suggested measures. These details feed the hazard suggestion engine.",
		},
	},
}

const defaultReply = "I can answer questions about hazard inventories, risk scoring, regulatory norms, hazard suggestions and the risk management program document. Could you rephrase your question?"

// Respond returns the canned reply for the message.
func (r *Responder) Respond(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.variants[variantIndex(lowered, len(rule.variants))]
			}
		}
	}
	return defaultReply
}

func variantIndex(message string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(message))
	return int(h.Sum32() % uint32(n))
}
