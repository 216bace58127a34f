package ez

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	stmts, errs := Parse(src)
	require.Empty(t, errs, "parse errors: %v", errs)
	var buf bytes.Buffer
	ip := NewInterpreter()
	ip.Out = &buf
	err := ip.Run(stmts)
	return buf.String(), err
}

func TestClosureRetainsDefinitionEnvironment(t *testing.T) {
	src := `
task makeCounter() {
  count = 0
  give |inc| {
    count += inc
    give count
  }
}
counter = makeCounter()
out counter(1)
out counter(2)
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n", out)
}

func TestRecursiveFibonacci(t *testing.T) {
	src := `
task fib(n) {
  when n < 2 {
    give n
  }
  give fib(n - 1) + fib(n - 2)
}
out fib(10)
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestArrayDictIterationSum(t *testing.T) {
	src := `
arr = [1, 2, 3]
total = 0
get x in arr {
  total += x
}
out total
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestHiddenMemberAccessViolation(t *testing.T) {
	src := `
model Secret {
  init() {
    self.secretVal = 1
  }
  hidden secretVal = 0
}
s = new Secret()
out s.secretVal
`
	_, err := runProgram(t, src)
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, KindAccessViolation, re.Kind)
}

func TestHiddenMemberAccessViolationAcrossSameClassInstances(t *testing.T) {
	src := `
model Box {
  init(v) {
    self.value = v
  }
  hidden value = 0
  task leak(peer) {
    give peer.value
  }
}
b1 = new Box(1)
b2 = new Box(2)
out b1.leak(b2)
`
	_, err := runProgram(t, src)
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, KindAccessViolation, re.Kind)
}

func TestTryCatchBindsThrownMessage(t *testing.T) {
	src := `
try {
  throw "oops"
} catch e {
  out e
}
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "oops\n", out)
}

func TestRepeatDescendingWithEscape(t *testing.T) {
	src := `
repeat i = 5 to 1 {
  when i == 3 {
    escape
  }
  out i
}
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "5\n4\n", out)
}

func TestModelInheritanceAndSuperCall(t *testing.T) {
	src := `
model Animal {
  init(name) {
    self.name = name
  }
  task speak() {
    give self.name + " makes a sound"
  }
}
model Dog extends Animal {
  init(name) {
    self.super(name)
  }
  task speak() {
    give self.super() + " (bark)"
  }
}
d = new Dog("Rex")
out d.speak()
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "Rex makes a sound (bark)\n", out)
}

func TestRepeatLoopVariableIsSharedAcrossCapturedClosures(t *testing.T) {
	src := `
fns = [nil, nil, nil]
repeat i = 1 to 3 {
  fns[i - 1] = || => i
}
out fns[0]()
out fns[1]()
out fns[2]()
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	// every closure shares the one loop environment, so each sees the
	// loop variable's final value rather than a private per-iteration copy.
	assert.Equal(t, "3\n3\n3\n", out)
}

func TestGetLoopVariableIsSharedAcrossCapturedClosures(t *testing.T) {
	src := `
fns = [nil, nil, nil]
i = 0
get x in [10, 20, 30] {
  fns[i] = || => x
  i += 1
}
out fns[0]()
out fns[1]()
out fns[2]()
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "30\n30\n30\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, "out missing\n")
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, KindUndefinedVariable, re.Kind)
}

func TestDivisionByZero(t *testing.T) {
	_, err := runProgram(t, "out 1 / 0\n")
	require.Error(t, err)
	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, KindDivisionByZero, re.Kind)
}

func TestStructSynthesizesFieldAssigningInit(t *testing.T) {
	src := `
struct Point {
  x, y
}
p = new Point(3, 4)
out p.x
out p.y
`
	out, err := runProgram(t, src)
	require.NoError(t, err)
	assert.Equal(t, "3\n4\n", out)
}
