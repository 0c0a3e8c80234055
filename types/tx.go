package types

// SentinelEventType marks chain bookkeeping events that are left out of summaries.
const SentinelEventType = "tx"

// TxResponse is the response printed by `osmosisd query tx <hash> --output=json`.
type TxResponse struct {
	Height    string  `json:"height,omitempty"`
	TxHash    string  `json:"txhash,omitempty"`
	Code      int     `json:"code"`
	Codespace string  `json:"codespace"`
	Data      string  `json:"data"`
	RawLog    string  `json:"raw_log,omitempty"`
	GasWanted string  `json:"gas_wanted,omitempty"`
	GasUsed   string  `json:"gas_used,omitempty"`
	Events    []Event `json:"events"`
	Tx        Tx      `json:"tx"`
	Logs      []Log   `json:"logs"`
}

type Tx struct {
	Type string `json:"@type"`
	Body Body   `json:"body"`
}

type Body struct {
	Messages                    []Message `json:"messages"`
	Memo                        string    `json:"memo"`
	TimeoutHeight               string    `json:"timeout_height"`
	ExtensionOptions            []any     `json:"extension_options"`
	NonCriticalExtensionOptions []any     `json:"non_critical_extension_options"`
}

// Message is a single tx message. Msg holds the contract message verbatim.
type Message struct {
	Type     string `json:"@type"`
	Sender   string `json:"sender"`
	Contract string `json:"contract"`
	Msg      any    `json:"msg"`
	Funds    []Fund `json:"funds"`
}

type Fund struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Log is the execution trace of the message at MsgIndex.
type Log struct {
	MsgIndex uint32  `json:"msg_index"`
	Log      string  `json:"log"`
	Events   []Event `json:"events"`
}

type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// IsSentinel reports whether the event is chain bookkeeping.
func (e Event) IsSentinel() bool {
	return e.Type == SentinelEventType
}

// FirstSender returns the sender of the first message in the tx body.
func (r *TxResponse) FirstSender() (string, error) {
	if len(r.Tx.Body.Messages) == 0 {
		return "", ErrEmptyMessages.Wrapf("tx %s has no messages", r.TxHash)
	}
	return r.Tx.Body.Messages[0].Sender, nil
}

// FirstLog returns the log of the first message.
func (r *TxResponse) FirstLog() (Log, error) {
	if len(r.Logs) == 0 {
		return Log{}, ErrEmptyLogs.Wrapf("tx %s has no logs", r.TxHash)
	}
	return r.Logs[0], nil
}
