package bot

// Quick-reply labels shown to every user.
const (
	LabelNewFlight  = "Record new flight"
	LabelStats      = "Show statistics"
	LabelExport     = "Export Excel"
	LabelDeleteLast = "Delete last record"
	LabelDeleteAll  = "Delete all flight time"
)

// MenuLabels lists the quick-reply actions in display order.
func MenuLabels() []string {
	return []string{LabelNewFlight, LabelStats, LabelExport, LabelDeleteLast, LabelDeleteAll}
}

// Document is a file attachment delivered with a reply.
type Document struct {
	Name string
	Data []byte
}

// Reply is one outbound message produced by the router. The transport
// decides how to render it: HTML marks Telegram-style formatting and
// ShowMenu asks for the quick-reply keyboard to be drawn.
type Reply struct {
	Text     string
	HTML     bool
	ShowMenu bool
	Document *Document
}

func text(s string) []Reply {
	return []Reply{{Text: s}}
}
