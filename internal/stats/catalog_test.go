package stats

import (
	"errors"
	"testing"
)

func TestCatalog_Run(t *testing.T) {
	c := NewCatalog([]string{"Date", "Home", "Away"})
	c.Add("first", []string{"Date"}, func() any { return 1 })
	c.Add("second", []string{"Home", "Away"}, func() any { return "two" })

	out, err := c.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out["first"] != 1 {
		t.Errorf("out[first] = %v, want 1", out["first"])
	}
	if out["second"] != "two" {
		t.Errorf("out[second] = %v, want two", out["second"])
	}
}

func TestCatalog_MissingField(t *testing.T) {
	computed := false
	c := NewCatalog([]string{"Date"})
	c.Add("ok", []string{"Date"}, func() any { computed = true; return nil })
	c.Add("broken", []string{"Date", "Attendance", "Venue"}, func() any { computed = true; return nil })

	_, err := c.Run()
	if err == nil {
		t.Fatal("Run() should fail when a request needs absent columns")
	}

	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("error type = %T, want *MissingFieldError", err)
	}
	if mfe.Request != "broken" {
		t.Errorf("Request = %s, want broken", mfe.Request)
	}
	if len(mfe.Columns) != 2 || mfe.Columns[0] != "Attendance" || mfe.Columns[1] != "Venue" {
		t.Errorf("Columns = %v, want [Attendance Venue]", mfe.Columns)
	}
	if computed {
		t.Error("no compute closure may run when validation fails")
	}
}

func TestCatalog_NoRequests(t *testing.T) {
	c := NewCatalog(nil)
	out, err := c.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("out = %v, want empty", out)
	}
}
