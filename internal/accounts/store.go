package accounts

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserStore is the credential store: a durable email -> password-hash
// mapping with uniqueness enforced at the store level.
type UserStore interface {
	FindByEmail(email string) (User, error)
	Insert(email, passwordHash string) (User, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByEmail(email string) (User, error) {
	var user User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return user, nil
}

// Insert relies on the unique index on email, so concurrent inserts of the
// same address serialize on the constraint: at most one succeeds and the
// loser gets ErrDuplicateEmail.
func (s *GormUserStore) Insert(email, passwordHash string) (User, error) {
	user := User{Email: email, PasswordHash: passwordHash}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrDuplicateEmail
		}
		return User{}, err
	}
	return user, nil
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
