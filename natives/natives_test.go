package natives

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imabd645/EZ-langauge"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	stmts, errs := ez.Parse(src)
	require.Empty(t, errs)
	var buf bytes.Buffer
	ip := ez.NewInterpreter()
	ip.Out = &buf
	Install(ip)
	err := ip.Run(stmts)
	return buf.String(), err
}

func TestSizeOverArrayStringDict(t *testing.T) {
	out, err := run(t, `
out size([1, 2, 3])
out size("hello")
out size({a: 1, b: 2})
`)
	require.NoError(t, err)
	assert.Equal(t, "3\n5\n2\n", out)
}

func TestPushAndPopMutateArray(t *testing.T) {
	out, err := run(t, `
arr = [1, 2]
push(arr, 3)
out arr
out pop(arr)
out arr
`)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n3\n[1, 2]\n", out)
}

func TestJSONRoundTrip(t *testing.T) {
	out, err := run(t, `
encoded = jsonEncode({name: "ez"})
decoded = jsonDecode(encoded)
out decoded["name"]
`)
	require.NoError(t, err)
	assert.Equal(t, "ez\n", out)
}

func TestStringHelpers(t *testing.T) {
	out, err := run(t, `
out upper("abc")
out lower("ABC")
out join(split("a,b,c", ","), "-")
`)
	require.NoError(t, err)
	assert.Equal(t, "ABC\nabc\na-b-c\n", out)
}

func TestDescribeReportsDeclaredVisibility(t *testing.T) {
	out, err := run(t, `
model Account {
  init() {
    self.balance = 0
  }
  shown owner = ""
  hidden pin = ""
}
a = new Account()
d = describe(a)
out d["owner"]
out d["pin"]
`)
	require.NoError(t, err)
	assert.Equal(t, "shown\nhidden\n", out)
}

func TestMathHelpers(t *testing.T) {
	out, err := run(t, `
out floor(3.7)
out max(2, 9)
out pow(2, 5)
`)
	require.NoError(t, err)
	assert.Equal(t, "3\n9\n32\n", out)
}
