package parse

// Binary operator precedence, higher binds tighter. Operators missing
// from the table never continue an expression.
var precedences = map[string]int{
	"&&": 0,
	"||": 0,
	"+":  1,
	"-":  1,
	"*":  2,
	"/":  2,
	"%":  2,
	"^":  3,
}

const precedenceNone = -1

func precedence(operator string) int {
	if p, ok := precedences[operator]; ok {
		return p
	}
	return precedenceNone
}
