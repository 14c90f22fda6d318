package strings

import "testing"

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"sessions":      "/sessions",
		"/interview/":   "/interview",
		"  /reports  ":  "/reports",
		"//questions//": "/questions",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("root prefix should panic")
		}
	}()
	MustPrefix(" / ")
}

func TestIfEmptyAndMustString(t *testing.T) {
	if got := IfEmpty(nil, []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]int{1}, []int{2}); got[0] != 1 {
		t.Fatalf("IfEmpty kept default over input: %v", got)
	}
	if MustString("meta", "name") != "meta" {
		t.Fatal("MustString changed input")
	}
	defer func() {
		if r := recover(); r != "module name is required" {
			t.Fatalf("panic = %v", r)
		}
	}()
	MustString("  ", "module name")
}
