package tsym

import (
	"github.com/dustin/go-humanize"
	"github.com/tliron/commonlog"
)

// log is the core's logging sink collaborator (§6, §7): every DomainInvalid,
// Overflow, or Precondition event is emitted here with severity and the
// operation name standing in for source location, instead of being thrown
// across the core boundary.
var log = commonlog.GetLogger("tsym")

// logDomainInvalid records an operation that hit an incompatible-operand
// case and fell back to Undefined. Spec.md doesn't pin a severity for this
// kind the way it does for Overflow/Precondition, so it is logged at the
// quietest level that still shows up with verbose logging enabled — these
// are routine in symbolic computation (§7 rationale).
func logDomainInvalid(op string, cause error) {
	log.Debugf("%s: domain invalid: %s", op, cause)
}

// logOverflow records a degree/exponent that didn't fit the platform
// integer, logged at ERROR per §7.
func logOverflow(op string, cause error) {
	log.Errorf("%s: overflow: %s", op, cause)
}

// logPrecondition records API misuse, logged at WARNING per §7.
func logPrecondition(op string, cause error) {
	log.Warningf("%s: precondition violated: %s", op, cause)
}

// logCacheCleared reports a bulk cache invalidation (component L) at INFO,
// humanizing the entry count the way an operational log line would.
func logCacheCleared(name string, n int) {
	log.Infof("cache %s cleared: %s entries", name, humanize.Comma(int64(n)))
}
