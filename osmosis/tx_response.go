package osmosis

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const txResponseSchemaURL = "https://osmosis-cli-wrapper.local/schema/tx_response.schema.json"

//go:embed schema/tx_response.schema.json
var txResponseSchemaJSON string

var txResponseSchema = mustCompileSchema(txResponseSchemaURL, txResponseSchemaJSON)

func mustCompileSchema(url, schema string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(url, strings.NewReader(schema)); err != nil {
		panic(err)
	}
	return c.MustCompile(url)
}

// ParseTxResponse parses the output of `osmosisd query tx`. The document is
// checked against the expected shape before it is decoded; both failures are
// reported as types.ErrParse.
func ParseTxResponse(raw []byte) (*types.TxResponse, error) {
	doc, err := decodeJSON(raw)
	if err != nil {
		return nil, types.ErrParse.Wrapf("invalid JSON: %s", err)
	}
	if err := txResponseSchema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, types.ErrParse.Wrapf("unexpected tx response: %s", leafMessage(verr))
		}
		return nil, types.ErrParse.Wrapf("unexpected tx response: %s", err)
	}

	var resp types.TxResponse
	if err := decodeInto(raw, &resp); err != nil {
		return nil, types.ErrParse.Wrapf("unable to decode tx response: %s", err)
	}
	return &resp, nil
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number.
func decodeJSON(raw []byte) (any, error) {
	var doc any
	if err := decodeInto(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeInto(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return errors.New("trailing data after JSON value")
	}
	return nil
}

// leafMessage returns the most specific cause of a validation failure.
func leafMessage(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	if verr.InstanceLocation == "" {
		return verr.Message
	}
	return verr.InstanceLocation + ": " + verr.Message
}
