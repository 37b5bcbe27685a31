// Package users loads the people who may use the tracker and their roles.
package users

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/maxkimambo/tasks/internal/logger"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// User is an entry in the users file.
type User struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email,omitempty"`
	Role         Role   `yaml:"role"`
	PasswordHash string `yaml:"passwordHash"` // bcrypt hash
}

// Guest is the identity used when no user is given. It can only do what an employee can.
var Guest = User{Name: "guest", Role: RoleEmployee}

type usersFile struct {
	Users []User `yaml:"users"`
}

// Directory is the in-memory copy of the users file.
type Directory struct {
	path  string
	users map[string]User
}

// Load reads the users file at path. A missing file gives an empty directory.
func Load(path string) (*Directory, error) {
	d := &Directory{path: path, users: map[string]User{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Op.Debugf("users file %s not found, starting empty", path)
			return d, nil
		}
		return nil, taskerrors.NewStorageReadError(path, err)
	}

	var f usersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, taskerrors.NewConfigurationError(taskerrors.CodeConfigParse,
			"Failed to parse users file", "Load users").
			WithContext("file", path).
			WithOriginalError(err)
	}
	for _, u := range f.Users {
		d.users[strings.ToLower(u.Name)] = u
	}
	return d, nil
}

// Lookup finds a user by name, case-insensitively.
func (d *Directory) Lookup(name string) (User, bool) {
	u, ok := d.users[strings.ToLower(name)]
	return u, ok
}

// Authenticate checks password against the stored bcrypt hash.
func (d *Directory) Authenticate(name, password string) (User, error) {
	u, ok := d.Lookup(name)
	if !ok {
		return User{}, taskerrors.NewAuthError(taskerrors.CodeAuthUnknownUser, name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, taskerrors.NewAuthError(taskerrors.CodeAuthBadPassword, name).WithOriginalError(err)
	}
	return u, nil
}

// Add hashes password and stores u, replacing any user with the same name.
func (d *Directory) Add(u User, password string) error {
	if strings.TrimSpace(u.Name) == "" {
		return taskerrors.NewValidationFailedError("name", u.Name, "Add user")
	}
	if password == "" {
		return taskerrors.NewValidationFailedError("password", "", "Add user")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return taskerrors.NewValidationFailedError("password", "<redacted>", "Add user").WithOriginalError(err)
	}
	u.PasswordHash = string(hash)
	d.users[strings.ToLower(u.Name)] = u
	return nil
}

// Users returns all users sorted by name.
func (d *Directory) Users() []User {
	out := make([]User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Save writes the directory back to its file.
func (d *Directory) Save() error {
	data, err := yaml.Marshal(usersFile{Users: d.Users()})
	if err != nil {
		return taskerrors.NewStorageWriteError(d.path, err)
	}
	if err := os.WriteFile(d.path, data, 0o600); err != nil {
		return taskerrors.NewStorageWriteError(d.path, err)
	}
	return nil
}
