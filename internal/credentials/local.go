package credentials

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// PasswordHashCost is the bcrypt cost used by HashPassword.
var PasswordHashCost = bcrypt.DefaultCost

// Account is one entry of the accounts file.
type Account struct {
	Email string `yaml:"email"`
	Hash  string `yaml:"hash"`
}

// accountsFile is the on-disk layout of the accounts file.
type accountsFile struct {
	Accounts []Account `yaml:"accounts"`
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", &Error{Type: ErrTypeValidation, Message: "password is empty"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// LocalSubmitter verifies credentials against a YAML accounts file. The file
// is read on every submission so edits apply without a restart.
type LocalSubmitter struct {
	path string
	mu   sync.Mutex
}

// NewLocalSubmitter creates a submitter backed by the accounts file at path.
func NewLocalSubmitter(path string) *LocalSubmitter {
	return &LocalSubmitter{path: path}
}

// Path returns the accounts file location.
func (s *LocalSubmitter) Path() string { return s.path }

// Submit checks email and password. Unknown emails and wrong passwords both
// yield ErrInvalidCredentials.
func (s *LocalSubmitter) Submit(ctx context.Context, email, password string) error {
	if _, err := NewRequest(email, password); err != nil {
		return err
	}

	accounts, err := s.load()
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, a := range accounts {
		if !strings.EqualFold(a.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	return ErrInvalidCredentials
}

// AddAccount stores or replaces the account for email with a fresh hash.
func (s *LocalSubmitter) AddAccount(email, password string) error {
	if _, err := NewRequest(email, password); err != nil {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	accounts, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			accounts[i].Hash = hash
			replaced = true
		}
	}
	if !replaced {
		accounts = append(accounts, Account{Email: email, Hash: hash})
	}

	return s.save(accounts)
}

func (s *LocalSubmitter) load() ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Type: ErrTypeStore, Message: "failed to read accounts file", Err: err}
	}

	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &Error{Type: ErrTypeStore, Message: "failed to parse accounts file", Err: err}
	}
	return f.Accounts, nil
}

func (s *LocalSubmitter) save(accounts []Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &Error{Type: ErrTypeStore, Message: "failed to create accounts directory", Err: err}
	}

	data, err := yaml.Marshal(accountsFile{Accounts: accounts})
	if err != nil {
		return fmt.Errorf("failed to marshal accounts: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return &Error{Type: ErrTypeStore, Message: "failed to write accounts file", Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return &Error{Type: ErrTypeStore, Message: "failed to save accounts file", Err: err}
	}
	return nil
}
