package osmosis

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/thec00n/osmosis-cli-wrapper/events"
	"github.com/thec00n/osmosis-cli-wrapper/types"
)

// Report is the human readable summary of a transaction query.
type Report struct {
	Raw      []byte
	Sender   string
	Messages []types.Message
	// top level events, base64 decoded
	Events string
	// events of the first message log, already plain text
	Logs string
}

// BuildReport parses raw tx JSON and summarizes it. Nothing is written, so a
// failure leaves no partial output behind.
func BuildReport(raw []byte, names events.NameResolver) (*Report, error) {
	resp, err := ParseTxResponse(raw)
	if err != nil {
		return nil, err
	}

	sender, err := resp.FirstSender()
	if err != nil {
		return nil, err
	}
	firstLog, err := resp.FirstLog()
	if err != nil {
		return nil, err
	}

	return &Report{
		Raw:      raw,
		Sender:   sender,
		Messages: resp.Tx.Body.Messages,
		Events:   events.Summarize(resp.Events, true, names),
		Logs:     events.Summarize(firstLog.Events, false, names),
	}, nil
}

// Render writes the raw JSON followed by the sender, messages, events and
// logs blocks.
func (r *Report) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.Write(r.Raw)
	bw.WriteString("\n")

	bw.WriteString("--> Sender <--\n")
	bw.WriteString(r.Sender + "\n")

	bw.WriteString("--> Messages <--\n")
	for _, msg := range r.Messages {
		if msg.Funds == nil {
			msg.Funds = []types.Fund{}
		}
		bw.WriteString("Message:\n")
		if err := writePrettyJSON(bw, msg); err != nil {
			return err
		}
	}

	bw.WriteString("--> Events <--\n")
	bw.WriteString(r.Events + "\n")

	bw.WriteString("--> Logs <--\n")
	bw.WriteString(r.Logs + "\n")

	return bw.Flush()
}

// writePrettyJSON writes v indented by two spaces and followed by a newline.
func writePrettyJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
