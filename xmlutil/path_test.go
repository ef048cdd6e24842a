package xmlutil

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodePath(t *testing.T) {
	doc, err := xmlquery.Parse(strings.NewReader(`<Model vehicles="police">
  <Modes>
    <Mode name="a"/>
    <Mode name="b"><Extras><Extra ID="1"/></Extras></Mode>
  </Modes>
</Model>`))
	require.NoError(t, err)

	for _, tc := range []struct {
		expr string
		want string
	}{
		{expr: "/Model", want: "/Model"},
		{expr: "/Model/Modes", want: "/Model/Modes"},
		{expr: "/Model/Modes/Mode[1]", want: "/Model/Modes/Mode[1]"},
		{expr: "/Model/Modes/Mode[2]/Extras/Extra", want: "/Model/Modes/Mode[2]/Extras/Extra"},
	} {
		t.Run(tc.expr, func(t *testing.T) {
			n := xmlquery.FindOne(doc, tc.expr)
			require.NotNil(t, n)
			assert.Equal(t, tc.want, NodePath(n))
		})
	}

	a := assert.New(t)
	a.Equal("/", NodePath(doc))
	a.Equal("/Model/Audio", ChildPath(xmlquery.FindOne(doc, "/Model"), "Audio"))
	a.Equal("/Model", ChildPath(doc, "Model"))
}
