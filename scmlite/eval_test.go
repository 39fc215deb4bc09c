package scmlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func evalOne(t *testing.T, src string) Value {
	t.Helper()
	forms := ReadAll(src)
	assert.Len(t, forms, 1)
	return Eval(forms[0], NewGlobalFrame())
}

func TestSelfEvaluatingForms(t *testing.T) {
	assert.Equal(t, int64(42), evalOne(t, "42").Int())
	assert.Equal(t, 3.5, evalOne(t, "3.5").Real())
	assert.True(t, evalOne(t, "#t").Bool())
}

func TestArithmeticNumericTower(t *testing.T) {
	assert.Equal(t, int64(6), evalOne(t, "(+ 1 2 3)").Int())
	assert.True(t, evalOne(t, "(+ 1 2 3)").IsInt())
	assert.Equal(t, 3.5, evalOne(t, "(+ 1 2.5)").Real())
	assert.True(t, evalOne(t, "(+ 1 2.5)").IsReal())
}

func TestDivisionPromotesOnUnevenSplit(t *testing.T) {
	v := evalOne(t, "(/ 7 2)")
	assert.True(t, v.IsReal())
	assert.Equal(t, 3.5, v.Real())

	v2 := evalOne(t, "(/ 6 2)")
	assert.True(t, v2.IsInt())
	assert.Equal(t, int64(3), v2.Int())
}

func TestDivisionMixedIntRealPromotes(t *testing.T) {
	v := evalOne(t, "(/ 6 2.0)")
	assert.True(t, v.IsReal())
	assert.Equal(t, 3.0, v.Real())
}

func TestLessThanGreaterThanAcrossTower(t *testing.T) {
	assert.True(t, evalOne(t, "(< 1 2.5)").Bool())
	assert.True(t, evalOne(t, "(> 2.5 1)").Bool())
	assert.False(t, evalOne(t, "(< 2.5 1)").Bool())
}

func TestModuloRequiresIntegers(t *testing.T) {
	assert.Equal(t, int64(1), evalOne(t, "(modulo 7 3)").Int())
	assert.Panics(t, func() { evalOne(t, "(modulo 7 3.0)") })
}

func TestMinusAndDivideAreFixedArityTwo(t *testing.T) {
	assert.Equal(t, int64(-4), evalOne(t, "(- 1 5)").Int())
	assert.Panics(t, func() { evalOne(t, "(- 1 2 3)") })
	assert.Panics(t, func() { evalOne(t, "(- 1)") })
	assert.Panics(t, func() { evalOne(t, "(/ 2)") })
	assert.Panics(t, func() { evalOne(t, "(/ 1 2 3)") })
}

func TestConsCarCdrNull(t *testing.T) {
	assert.Equal(t, int64(1), evalOne(t, "(car (cons 1 2))").Int())
	assert.Equal(t, int64(2), evalOne(t, "(cdr (cons 1 2))").Int())
	assert.True(t, evalOne(t, "(null? (cdr (cons 1 (quote ()))))").Bool())
}

func TestIfBranches(t *testing.T) {
	assert.Equal(t, int64(1), evalOne(t, "(if #t 1 2)").Int())
	assert.Equal(t, int64(2), evalOne(t, "(if #f 1 2)").Int())
}

func TestIfRequiresExactlyThreeArguments(t *testing.T) {
	assert.Panics(t, func() { evalOne(t, "(if #t 1)") })
	assert.Panics(t, func() { evalOne(t, "(if #t 1 2 3)") })
}

func TestDefineAndLookup(t *testing.T) {
	global := NewGlobalFrame()
	forms := ReadAll("(define x 10) (+ x 5)")
	assert.Len(t, forms, 2)
	assert.True(t, Eval(forms[0], global).IsVoid())
	assert.Equal(t, int64(15), Eval(forms[1], global).Int())
}

func TestDefineProcedureShorthand(t *testing.T) {
	global := NewGlobalFrame()
	forms := ReadAll("(define (square x) (* x x)) (square 5)")
	Eval(forms[0], global)
	assert.Equal(t, int64(25), Eval(forms[1], global).Int())
}

func TestSetBangMutatesExistingBinding(t *testing.T) {
	global := NewGlobalFrame()
	forms := ReadAll("(define x 1) (set! x 2) x")
	Eval(forms[0], global)
	Eval(forms[1], global)
	assert.Equal(t, int64(2), Eval(forms[2], global).Int())
}

func TestSetBangUnboundFails(t *testing.T) {
	global := NewGlobalFrame()
	forms := ReadAll("(set! never-defined 1)")
	assert.Panics(t, func() { Eval(forms[0], global) })
}

func TestLambdaAndApply(t *testing.T) {
	assert.Equal(t, int64(7), evalOne(t, "((lambda (a b) (+ a b)) 3 4)").Int())
}

func TestLetDoesNotSeeOwnBindings(t *testing.T) {
	global := NewGlobalFrame()
	global.Bind("x", NewInt(100))
	forms := ReadAll("(let ((x 1) (y x)) (+ x y))")
	assert.Equal(t, int64(101), Eval(forms[0], global).Int())
}

func TestLetStarSeesPriorBindings(t *testing.T) {
	assert.Equal(t, int64(3), evalOne(t, "(let* ((x 1) (y (+ x 2))) y)").Int())
}

func TestLetrecMutualRecursion(t *testing.T) {
	src := `(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	              (odd? (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	  (even? 10))`
	assert.True(t, evalOne(t, src).Bool())
}

func TestBeginReturnsLastValue(t *testing.T) {
	assert.Equal(t, int64(3), evalOne(t, "(begin 1 2 3)").Int())
}

func TestCondSkipsFalseClausesAndStopsAtFirstTrue(t *testing.T) {
	src := `(cond (#f 1) (#t 2) (#t 3))`
	assert.Equal(t, int64(2), evalOne(t, src).Int())
}

func TestCondElseClause(t *testing.T) {
	src := `(cond (#f 1) (else 2))`
	assert.Equal(t, int64(2), evalOne(t, src).Int())
}

func TestAndShortCircuits(t *testing.T) {
	assert.False(t, evalOne(t, "(and 1 #f never-bound)").Truthy())
	assert.Equal(t, int64(3), evalOne(t, "(and 1 2 3)").Int())
}

func TestOrShortCircuits(t *testing.T) {
	assert.Equal(t, int64(1), evalOne(t, "(or 1 never-bound)").Int())
	assert.False(t, evalOne(t, "(or #f #f)").Truthy())
}

func TestQuoteSugar(t *testing.T) {
	v := evalOne(t, "'(1 2 3)")
	assert.Equal(t, 3, Length(v))
}

func TestApplyingNonProcedureFails(t *testing.T) {
	assert.Panics(t, func() { evalOne(t, "(1 2 3)") })
}

func TestUnboundSymbolFails(t *testing.T) {
	assert.Panics(t, func() { evalOne(t, "never-bound") })
}
