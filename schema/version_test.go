package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  Version
	}{
		{name: "v1 root", input: `<?xml version="1.0"?><CONFIG></CONFIG>`, want: V1},
		{name: "v2 root", input: `<Model><Modes/></Model>`, want: V2},
		{name: "vehicles attribute", input: `<Vehicle vehicles="police"/>`, want: V2},
		{name: "v1 by StageSettings", input: `<Root><StageSettings/></Root>`, want: V1},
		{name: "v1 by SoundSettings", input: `<Root><SoundSettings/></Root>`, want: V1},
		{name: "v2 by Audio", input: `<Root><Audio/></Root>`, want: V2},
		{name: "v2 by Modes", input: `<Root><Modes/></Root>`, want: V2},
		{name: "v1 root wins over v2 sections", input: `<CONFIG><Modes/></CONFIG>`, want: V1},
		{name: "nested sections ignored", input: `<Root><x><Modes/></x></Root>`, want: Unknown},
		{name: "unrelated", input: `<hello/>`, want: Unknown},
		{name: "malformed", input: `<CONFIG><StageSettings></CONFIG>`, want: Unknown},
		{name: "empty", input: ``, want: Unknown},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(strings.NewReader(tc.input)))
		})
	}
}

func TestVersionText(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Version
		err  bool
	}{
		{in: "v1", want: V1},
		{in: " V2 ", want: V2},
		{in: "unknown", want: Unknown},
		{in: "v3", err: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			a := assert.New(t)
			var v Version
			err := v.UnmarshalText([]byte(tc.in))
			if tc.err {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, v)
			b, _ := v.MarshalText()
			a.Equal(strings.ToLower(strings.TrimSpace(tc.in)), string(b))
		})
	}
	assert.Equal(t, "Version(5)", Version(5).String())
}

func TestRoot(t *testing.T) {
	a := assert.New(t)
	a.Nil(Root(nil))
	a.Equal(V1, DetectBytes([]byte("<!-- generated -->\n<CONFIG/>")))
}
