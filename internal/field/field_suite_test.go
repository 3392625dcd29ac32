package field

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFieldLifecycle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Field Lifecycle Suite")
}
