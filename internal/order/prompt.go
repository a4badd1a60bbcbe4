package order

import "strings"

const DefaultOrderName = "miftah"

type PromptParams struct {
	Mode          Mode
	ListMenu      string
	CurrentOrders string
	// OrderName is the person whose order gets appended.
	OrderName string
}

const header = `You format lunch orders for an Indonesian office catering WhatsApp group.`

const orderRules = `ORDER RULES:
- Always take "nasi 1" (never "nasi 1/2")
- Pick exactly 2 or 3 lauk
- At least one lauk must be a protein (fillet ayam, ati ampela, dendeng sapi, udang, ikan, ceker)`

const outputRules = `OUTPUT RULES:
- Output ONLY the numbered order list, nothing before or after it
- No introductions, notes, bullet points or markdown
- Never wrap items in square brackets
- Separate the name from the items with ":" and items with ","
- Example line: 1. {name} : nasi 1, lauk 1, lauk 2`

// BuildPrompt renders the prompt for the given mode. An empty mode is normal.
func BuildPrompt(p PromptParams) string {
	name := strings.TrimSpace(p.OrderName)
	if name == "" {
		name = DefaultOrderName
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	switch p.Mode {
	case ModeFirstTouch:
		b.WriteString("Task: start a NEW order list. Write order number 1 for " + name + ".\n\n")
		b.WriteString(orderRules + "\n\n")
		b.WriteString("AVAILABLE MENU:\n" + p.ListMenu + "\n\n")
	case ModeNitro:
		b.WriteString("Task: keep every existing order unchanged and append " + name + "'s order at the next number.\n\n")
		b.WriteString(orderRules + "\n\n")
		b.WriteString("CURRENT ORDERS:\n" + p.CurrentOrders + "\n\n")
		b.WriteString("NOTE: No menu provided. Choose " + name + "'s dishes from the ones already ordered above.\n\n")
	default:
		b.WriteString("Task: keep every existing order unchanged and append " + name + "'s order at the next number, matching the existing format.\n\n")
		b.WriteString(orderRules + "\n\n")
		b.WriteString("AVAILABLE MENU:\n" + p.ListMenu + "\n\n")
		b.WriteString("CURRENT ORDERS:\n" + p.CurrentOrders + "\n\n")
	}

	b.WriteString(strings.ReplaceAll(outputRules, "{name}", name))
	return b.String()
}
