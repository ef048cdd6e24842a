package vcferr

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		json  string
	}{
		{
			err:   MalformedDocument(WithMessage("XML syntax error on line 3")),
			error: "parse error tag:malformed-document XML syntax error on line 3",
			json:  `{"kind":"parse","tag":"malformed-document","message":"XML syntax error on line 3"}`,
		},

		{
			err:   WrongRoot("foo", WithPath("/foo")),
			error: "parse error tag:wrong-root path:/foo bad-element:foo",
			json:  `{"kind":"parse","tag":"wrong-root","path":"/foo","bad-element":"foo"}`,
		},

		{
			err:   MissingElement("Modes"),
			error: "parse error tag:missing-element bad-element:Modes",
			json:  `{"kind":"parse","tag":"missing-element","bad-element":"Modes"}`,
		},

		{
			err:   MissingAttribute("name", "Mode", WithPath("/Model/Modes/Mode[2]")),
			error: "parse error tag:missing-attribute path:/Model/Modes/Mode[2] bad-attribute:name bad-element:Mode",
			json:  `{"kind":"parse","tag":"missing-attribute","path":"/Model/Modes/Mode[2]","bad-element":"Mode","bad-attribute":"name"}`,
		},

		{
			err:   InvalidValue("sequencerBpm", WithMessage(`"fast" is not an integer`)),
			error: `parse error tag:invalid-value bad-element:sequencerBpm "fast" is not an integer`,
			json:  `{"kind":"parse","tag":"invalid-value","message":"\"fast\" is not an integer","bad-element":"sequencerBpm"}`,
		},

		{
			err:   WriteFailed("/ro/out.xml", fs.ErrPermission),
			error: "write error tag:write-failed path:/ro/out.xml: permission denied",
			json:  `{"kind":"write","tag":"write-failed","path":"/ro/out.xml"}`,
		},
	} {
		t.Run(tc.err.Tag, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.error, tc.err.Error())
			b, err := json.Marshal(tc.err)
			a.NoError(err)
			a.Equal(tc.json, string(b))
		})
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{KindParse, KindWrite} {
		t.Run(k.String(), func(t *testing.T) {
			a := assert.New(t)
			b, err := k.MarshalText()
			a.NoError(err)
			var got Kind
			a.NoError(got.UnmarshalText(b))
			a.Equal(k, got)
		})
	}
	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestIsKind(t *testing.T) {
	a := assert.New(t)

	wrapped := errors.Wrap(MissingElement("Modes"), "loading police.xml")
	e, ok := IsParseError(wrapped)
	a.True(ok)
	a.Equal(TagMissingElement, e.Tag)
	_, ok = IsWriteError(wrapped)
	a.False(ok)

	werr := fmt.Errorf("save: %w", WriteFailed("x.xml", fs.ErrPermission))
	_, ok = IsWriteError(werr)
	a.True(ok)
	a.ErrorIs(werr, fs.ErrPermission)

	_, ok = IsParseError(errors.New("plain"))
	a.False(ok)
}
