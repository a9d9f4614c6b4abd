package fluent_test

import (
	"fmt"

	"github.com/ib-77/fluent/pkg/fluent"
)

type Options struct {
	URL string
}

func Example() {
	createOpts := fluent.Build[*Options]().
		Cascade("url", func(args ...any) func(*Options) {
			return func(opts *Options) { opts.URL = args[0].(string) }
		}).
		Chain("reset", func(args ...any) func(*Options) *Options {
			return func(*Options) *Options { return args[0].(*Options) }
		}).
		Unbox("toString", func(args ...any) func(*Options) any {
			return func(opts *Options) any { return fmt.Sprintf("{ url: %s }", opts.URL) }
		}).
		Value

	opts := createOpts(&Options{}).Call("url", "http://localhost/")
	out, _ := opts.Invoke("toString")
	fmt.Println(out)

	opts.Call("reset", &Options{URL: "http://127.0.0.1/"})
	fmt.Println(opts.Value.(*Options).URL)
	// Output:
	// { url: http://localhost/ }
	// http://127.0.0.1/
}

func ExampleChain() {
	numbers := fluent.Build[int]().
		Chain("add", func(args ...any) func(int) int {
			b := args[0].(int)
			return func(a int) int { return a + b }
		}).
		Chain("sub", func(args ...any) func(int) int {
			b := args[0].(int)
			return func(a int) int { return a - b }
		})

	labels := fluent.Chain(numbers, "label", func(args ...any) func(int) string {
		return func(a int) string { return fmt.Sprintf("%s=%d", args[0], a) }
	})
	fluent.UnboxAs(labels, "shout", func(args ...any) func(string) string {
		return func(s string) string { return s + "!" }
	})

	calc := numbers.Value(5).Call("add", 6).Call("sub", 7)
	fmt.Println(calc.Value)

	calc.Call("label", "total")
	fmt.Println(fluent.Extract[string](calc, "shout").OrElse("?"))
	// Output:
	// 4
	// total=4!
}
