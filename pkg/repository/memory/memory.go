package memory

import (
	"github.com/braindump-app/braindump/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	action *actionRepository
	user   *userRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		action: newActionRepository(),
		user:   newUserRepository(),
	}
}

func (m *Memory) Action() interfaces.ActionRepository {
	return m.action
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Close() error {
	return nil
}
