package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rink/span"
)

func TestTagIncompleteOnStrictPrefix(t *testing.T) {
	o := Tag("hello")(span.New("hel"))
	require.True(t, o.IsIncomplete())
	require.Equal(t, 2, o.Needed())
}

func TestTagNoCaseMatches(t *testing.T) {
	o := TagNoCase("0x")(span.New("0XFF"))
	require.True(t, o.IsOk())
	require.Equal(t, "0X", o.Value().Fragment)
}

func TestAltShortCircuitsOnIncomplete(t *testing.T) {
	o := Alt(Tag("hello"), Tag("h"))(span.New("hel"))
	require.True(t, o.IsIncomplete())
}

func TestAltCompleteSkipsIncompleteAlternative(t *testing.T) {
	o := AltComplete(Tag("hello"), Tag("hel"))(span.New("hel"))
	require.True(t, o.IsOk())
	require.Equal(t, "hel", o.Value().Fragment)
}

func TestSkipMany0NonConsumptionMidInputIsError(t *testing.T) {
	neverMatches := func(s span.Span) Outcome[span.Span] {
		rest, prefix := s.TakeSplit(0)
		return Ok(rest, prefix)
	}
	o := SkipMany0(neverMatches)(span.New("abc"))
	require.True(t, o.IsErr())
	require.Equal(t, KindMany0, o.Err().Kind)
}

func TestSkipMany0NonConsumptionAtEOFIsOk(t *testing.T) {
	neverMatches := func(s span.Span) Outcome[span.Span] {
		rest, prefix := s.TakeSplit(0)
		return Ok(rest, prefix)
	}
	o := SkipMany0(neverMatches)(span.New(""))
	require.True(t, o.IsOk())
}

func TestTakeUntilAndConsumeMissingNeedleFails(t *testing.T) {
	o := TakeUntilAndConsume("*/")(span.New("/* unterminated"))
	require.True(t, o.IsErr())
	require.Equal(t, KindTakeUntilAndConsume, o.Err().Kind)
}

func TestTakeUntilEndlineAndConsumeStripsTrailingCR(t *testing.T) {
	o := TakeUntilEndlineAndConsume(span.New("line\r\nrest"))
	require.True(t, o.IsOk())
	require.Equal(t, "line", o.Value().Fragment)
	require.Equal(t, "rest", o.Remainder().Fragment)
}

func TestTakeUntilEndlineAndConsumeNoNewlineIsIncomplete(t *testing.T) {
	o := TakeUntilEndlineAndConsume(span.New("no newline here"))
	require.True(t, o.IsIncomplete())
}
