// Public domain.

package sky

import (
	"fmt"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/sexagesimal"
)

// EquaString formats an equatorial position sexagesimally, with prec
// decimal places on the seconds.
func EquaString(eq coord.Equa, prec int) string {
	return fmt.Sprintf("{RA %2.*s, Dec %2.*s}",
		prec, sexa.FmtRA(eq.RA),
		prec, sexa.FmtAngle(eq.Dec))
}
