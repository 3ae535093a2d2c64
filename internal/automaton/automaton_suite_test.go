package automaton_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAutomaton(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Automaton Suite")
}
