// Package clock provides the wall clock used in production and a manually
// advanced clock for tests.
package clock

import (
	"time"

	"github.com/aalvaropc/tempdial/internal/ports"
)

// Real schedules with the runtime timer.
type Real struct{}

func NewReal() Real { return Real{} }

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) ports.Stopper {
	return time.AfterFunc(d, f)
}

var _ ports.Clock = Real{}
