package handlers_integrated_test_suite

import (
	"fmt"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	ok, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		teardown()
		os.Exit(1)
	}
	if !ok {
		fmt.Println("DATABASE_URL not set, skipping integrated handler tests")
		os.Exit(0)
	}
	code := m.Run()
	teardown()
	os.Exit(code)
}
