// Package knowledge holds the regulatory text every question is answered against.
package knowledge

import (
	"fmt"
	"strings"
)

// Doc is a reference document shipped with the service.
type Doc struct {
	ID      string
	Title   string
	Content string
}

// EED is the EU Energy Efficiency Directive excerpt used as answering context.
var EED = Doc{
	ID:    "eu-eed-2023",
	Title: "EU EED Directive 2023",
	Content: `REGULATION: EU Energy Efficiency Directive (EED) 2023 Recast.
SECTION 1: Energy Savings Obligation.
Member States must achieve cumulative end-use energy savings equivalent to new annual savings of at least 0.8% of final energy consumption.
SECTION 2: Public Sector.
Public bodies must renovate 3% of the total floor area of heated and/or cooled buildings owned and occupied by central government each year.
SECTION 3: Metering.
Final customers for electricity, natural gas, district heating, district cooling and domestic hot water should be provided with competitively priced individual meters that accurately reflect the final customer's actual energy consumption and that provide information on actual time of use.`,
}

// NotFoundReply is the sentence the model must use when the context has no answer.
const NotFoundReply = "I cannot find this in the current regulatory database."

// SystemPrompt renders the instruction prompt for doc.
func SystemPrompt(doc Doc) string {
	var b strings.Builder
	b.WriteString("You are an Expert Compliance Officer for Fortum, a major energy company.\n")
	b.WriteString("You only answer questions based on the provided Regulatory Context.\n\n")
	b.WriteString("CONTEXT:\n")
	b.WriteString(strings.TrimSpace(doc.Content))
	b.WriteString("\n\nRULES:\n")
	b.WriteString("1. If the answer is in the context, answer clearly and cite the section.\n")
	fmt.Fprintf(&b, "2. If the answer is NOT in the context, state: %q\n", NotFoundReply)
	b.WriteString("3. Do not hallucinate or use outside knowledge.\n")
	return b.String()
}
