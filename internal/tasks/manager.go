// Package tasks implements the index-validated task operations. Every
// mutation reads the whole list, changes one entry and rewrites the list.
package tasks

import (
	"strings"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/maxkimambo/tasks/internal/logger"
	"github.com/maxkimambo/tasks/internal/store"
	"github.com/maxkimambo/tasks/internal/users"
	"github.com/maxkimambo/tasks/internal/validation"
)

// Store is the persistence the Manager composes.
type Store interface {
	ReadAll() ([]store.Task, error)
	WriteAll(tasks []store.Task) error
	Append(task store.Task) error
}

// Assignment describes an announced assignment. It is not persisted.
type Assignment struct {
	Task          store.Task
	AssigneeEmail string
}

type Manager struct {
	store Store
}

func NewManager(s Store) *Manager {
	return &Manager{store: s}
}

// load reads all tasks, treating a missing file as an empty list.
func (m *Manager) load() ([]store.Task, error) {
	tasks, err := m.store.ReadAll()
	if err != nil {
		if taskerrors.IsNotFound(err) {
			logger.Op.Warn(taskerrors.DisplayErrorSummary(err))
			return tasks, nil
		}
		return nil, err
	}
	return tasks, nil
}

// loadAt reads all tasks and checks index is within them.
func (m *Manager) loadAt(index int, operation string) ([]store.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(tasks) {
		return nil, taskerrors.NewInvalidIndexError(index, len(tasks), operation)
	}
	return tasks, nil
}

// Create appends a new incomplete task.
func (m *Manager) Create(name, description string) (store.Task, error) {
	task := store.Task{Name: name, Description: description}
	if err := m.store.Append(task); err != nil {
		return store.Task{}, err
	}
	logger.Op.WithFields(map[string]interface{}{"task": name}).Debug("task created")
	return task, nil
}

// List returns all tasks in file order. A missing file yields an empty list
// together with the NotFound error so callers can tell the user.
func (m *Manager) List() ([]store.Task, error) {
	tasks, err := m.store.ReadAll()
	if err != nil && !taskerrors.IsNotFound(err) {
		return nil, err
	}
	return tasks, err
}

// EditDescription replaces the description of the task at index.
func (m *Manager) EditDescription(index int, description string) (store.Task, error) {
	tasks, err := m.loadAt(index, "Edit task")
	if err != nil {
		return store.Task{}, err
	}
	if err := validation.ValidateField("description", description); err != nil {
		return store.Task{}, err
	}
	tasks[index].Description = description
	if err := m.store.WriteAll(tasks); err != nil {
		return store.Task{}, err
	}
	return tasks[index], nil
}

// ToggleStatus flips the completion flag of the task at index and returns
// the task with its new status.
func (m *Manager) ToggleStatus(index int) (store.Task, error) {
	tasks, err := m.loadAt(index, "Update task status")
	if err != nil {
		return store.Task{}, err
	}
	tasks[index].Complete = !tasks[index].Complete
	if err := m.store.WriteAll(tasks); err != nil {
		return store.Task{}, err
	}
	return tasks[index], nil
}

// Assign announces that the task at index goes to assigneeEmail. Only roles
// that can assign may call it; the assignment is not stored.
func (m *Manager) Assign(index int, assigneeEmail string, role users.Role) (Assignment, error) {
	if !role.CanAssign() {
		return Assignment{}, taskerrors.NewForbiddenError("assign", role.String())
	}
	tasks, err := m.loadAt(index, "Assign task")
	if err != nil {
		return Assignment{}, err
	}
	assigneeEmail = strings.TrimSpace(assigneeEmail)
	if err := validation.ValidateAssignee(assigneeEmail, "Assign task"); err != nil {
		return Assignment{}, err
	}
	return Assignment{Task: tasks[index], AssigneeEmail: assigneeEmail}, nil
}

// Delete removes the task at index and returns it. Only roles that can
// delete may call it.
func (m *Manager) Delete(index int, role users.Role) (store.Task, error) {
	if !role.CanDelete() {
		return store.Task{}, taskerrors.NewForbiddenError("delete", role.String())
	}
	tasks, err := m.loadAt(index, "Delete task")
	if err != nil {
		return store.Task{}, err
	}
	removed := tasks[index]
	remaining := append(tasks[:index:index], tasks[index+1:]...)
	if err := m.store.WriteAll(remaining); err != nil {
		return store.Task{}, err
	}
	return removed, nil
}
