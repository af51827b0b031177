package envelope

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrap_PlainObjectUnchanged(t *testing.T) {
	in := map[string]interface{}{"make": "Honda", "year": float64(2019)}

	out := Unwrap(in)
	assert.Equal(t, in, out)
	assert.Equal(t, out, Unwrap(out))
}

func TestUnwrapJSON_Shapes(t *testing.T) {
	want := map[string]interface{}{"a": float64(1)}

	cases := map[string]string{
		"body string": `{"body":"{\"a\":1}"}`,
		"body object": `{"body":{"a":1}}`,
		"json":        `{"json":{"a":1}}`,
		"data":        `{"data":{"a":1}}`,
		"array":       `[{"a":1},{"a":2}]`,
		"nested":      `[{"json":{"data":{"body":"[{\"a\":1}]"}}}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, UnwrapJSON([]byte(raw)))
		})
	}
}

func TestUnwrap_WrapperOrder(t *testing.T) {
	v := map[string]interface{}{
		"body": map[string]interface{}{"from": "body"},
		"data": map[string]interface{}{"from": "data"},
		"json": map[string]interface{}{"from": "json"},
	}
	assert.Equal(t, map[string]interface{}{"from": "json"}, Unwrap(v))
}

func TestUnwrap_NoData(t *testing.T) {
	assert.Nil(t, UnwrapJSON([]byte(`[]`)))
	assert.Nil(t, UnwrapJSON([]byte(`null`)))
	assert.Nil(t, UnwrapJSON([]byte(`{"body":"not json"}`)))
	assert.Nil(t, UnwrapJSON([]byte(`{broken`)))
	assert.Equal(t, "done", UnwrapJSON([]byte(`"done"`)))
	assert.Equal(t, float64(3), UnwrapJSON([]byte(`{"data":3}`)))
}

func TestResolve(t *testing.T) {
	res, err := Resolve([]byte(`[{"json":{"make":"Toyota"}}]`))
	require.NoError(t, err)
	assert.Equal(t, "Toyota", res.Payload["make"])
	assert.Equal(t, []Shape{ShapeArray, ShapeJSON}, res.Shapes)

	res, err = Resolve([]byte(`{"make":"Toyota"}`))
	require.NoError(t, err)
	assert.Empty(t, res.Shapes)
}

func TestResolve_Errors(t *testing.T) {
	for _, raw := range []string{``, `  `, `null`, `[]`, `{}`, `{"data":{}}`, `{"body":"not json"}`} {
		_, err := Resolve([]byte(raw))
		assert.ErrorIs(t, err, ErrEmptyEnvelope, "input %q", raw)
	}
	for _, raw := range []string{`{oops`, `"text"`, `[1,2]`, `{"data":[true]}`} {
		_, err := Resolve([]byte(raw))
		assert.ErrorIs(t, err, ErrUnrecognizedEnvelope, "input %q", raw)
	}
}

func TestPickers(t *testing.T) {
	m := map[string]interface{}{
		"Make":  "  ",
		"make":  "Mazda",
		"year":  "2021",
		"doors": float64(4),
		"awd":   true,
	}
	assert.Equal(t, "Mazda", String(m, "Make", "make"))
	assert.Equal(t, "4", String(m, "doors"))
	assert.Equal(t, "true", String(m, "awd"))
	assert.Equal(t, "", String(m, "missing"))

	n, ok := Number(m, "missing", "year")
	assert.True(t, ok)
	assert.Equal(t, 2021.0, n)

	_, ok = Number(m, "make")
	assert.False(t, ok)
}

func TestParseAck(t *testing.T) {
	for _, body := range []string{"done", "Done", "  DONE\n", "\tdone "} {
		ack, err := ParseAck(200, []byte(body))
		require.NoError(t, err, "body %q", body)
		assert.True(t, ack.Legacy)
	}

	ack, err := ParseAck(201, []byte(`{"status":"ok","message":"saved"}`))
	require.NoError(t, err)
	assert.False(t, ack.Legacy)
	assert.Equal(t, "saved", ack.Message)

	_, err = ParseAck(200, []byte(`[{"json":{"status":"OK"}}]`))
	assert.NoError(t, err)
}

func TestParseAck_Failures(t *testing.T) {
	_, err := ParseAck(500, []byte("done"))
	assert.ErrorIs(t, err, ErrWebhookStatus)

	_, err = ParseAck(200, []byte(`{"status":"error","message":"stock not found"}`))
	require.ErrorIs(t, err, ErrWebhookRejected)
	assert.Contains(t, err.Error(), "stock not found")

	for _, body := range []string{"", "ok", "done.", `{"saved":true}`, `{"status":"pending"}`} {
		_, err = ParseAck(200, []byte(body))
		assert.True(t, errors.Is(err, ErrWebhookUnexpectedBody), "body %q", body)
	}
}

func TestParseAck_DoneMustBeRawText(t *testing.T) {
	for _, body := range []string{`"done"`, `["DONE"]`, `{"data":"done"}`, `{"json":"done"}`, `{"body":"\"done\""}`} {
		_, err := ParseAck(200, []byte(body))
		assert.ErrorIs(t, err, ErrWebhookUnexpectedBody, "body %q", body)
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ab...", truncate("abcdef", 2))

	// "é" is two bytes; cutting at 2 would split it
	got := truncate("aéz", 2)
	assert.Equal(t, "a...", got)
	assert.True(t, utf8.ValidString(got))

	long := strings.Repeat("€", 50)
	assert.True(t, utf8.ValidString(truncate(long, 120)))
}
