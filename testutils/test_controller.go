package testutils

import (
	"github.com/itbasis/go-clock"
)

// TestController bundles the fakes a controller needs in tests.
type TestController struct {
	Clock       *clock.Mock
	fakeStorage *FakeStorageServer
}

func (c *TestController) Close() {
	c.fakeStorage.Close()
}

func (c *TestController) StorageURL() string {
	return c.fakeStorage.URL()
}

func (c *TestController) Storage() *FakeStorageServer {
	return c.fakeStorage
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:       db.Clock,
		fakeStorage: NewFakeStorageServer(),
	}
}
