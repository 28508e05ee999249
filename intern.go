package tsym

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// tempSymbolPrefix is reserved: user-supplied symbol names may not start
// with it (§7 KindPrecondition), and it marks a symbol as anonymous and
// unstable between runs (§3 "Lifecycles").
const tempSymbolPrefix = "$tsym_tmp$"

type symbolInfo struct {
	name     Name
	positive bool
	temp     bool
}

// internTable keeps ordinary (non-temporary) symbols alive for the process
// lifetime and ensures (name, positive) maps to a single *Expr, so that
// identity comparison short-circuits structural equality for the common
// case (§3 "Lifecycles", §4.2 "interned handles compare by identity first").
type internTable struct {
	mu    sync.Mutex
	table map[string]*Expr
}

var symbolIntern = &internTable{table: make(map[string]*Expr)}

var tempSymbolCounter uint64

func internKey(name Name, positive bool) string {
	k := name.String()
	if positive {
		k += "\x00+"
	} else {
		k += "\x00-"
	}
	return k
}

// Symbol returns the canonical handle for (name, positive), interning it on
// first use. Names starting with the reserved temp prefix are rejected
// (KindPrecondition, §7): the operation logs and falls back to a fresh
// temporary symbol instead of silently aliasing a real temp symbol.
func Symbol(name string, positive bool) *Expr {
	if strings.HasPrefix(name, tempSymbolPrefix) {
		logPrecondition("symbol", errReservedTempPrefix)
		return TmpSymbol(positive)
	}
	return internSymbol(NewName(name), positive)
}

// DecoratedSymbol is Symbol with an explicit subscript decoration.
func DecoratedSymbol(base, sub string, positive bool) *Expr {
	return internSymbol(NewDecoratedName(base, sub), positive)
}

func internSymbol(name Name, positive bool) *Expr {
	key := internKey(name, positive)

	symbolIntern.mu.Lock()
	defer symbolIntern.mu.Unlock()
	if h, ok := symbolIntern.table[key]; ok {
		return h
	}
	h := &Expr{kind: KindSymbol, sym: &symbolInfo{name: name, positive: positive}}
	symbolIntern.table[key] = h
	return h
}

// TmpSymbol returns a fresh anonymous symbol with a reserved-prefix,
// monotonically-numbered name (§3 "Lifecycles"). Temporary symbols are not
// interned: they are anonymous and eligible for collection once the last
// handle referencing them drops.
func TmpSymbol(positive bool) *Expr {
	id := atomic.AddUint64(&tempSymbolCounter, 1)
	name := NewName(tempSymbolPrefix + strconv.FormatUint(id, 10))
	return &Expr{kind: KindSymbol, sym: &symbolInfo{name: name, positive: positive, temp: true}}
}

// IsTempSymbol reports whether e is a temporary symbol minted by TmpSymbol.
func IsTempSymbol(e *Expr) bool { return e.kind == KindSymbol && e.sym.temp }
