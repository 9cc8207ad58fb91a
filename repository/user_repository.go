package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"go-user-api/logger"
	"go-user-api/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetAllUsers() ([]*model.User, error)
	UpdateUser(id int, patch model.UserPatch) (*model.User, error)
	DeleteUser(id int) error
}

// UserRepository implements IUserRepository on top of *sql.DB.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new user. Returns ErrDuplicateEmail when the unique
// email constraint is violated.
func (r *UserRepository) CreateUser(user *model.User) error {
	log := logger.Log.WithField("email", user.Email)
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRow(query, user.Name, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		err = translateError(err)
		if err != ErrDuplicateEmail {
			log.WithError(err).Error("Failed to execute create user query")
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`
	err := r.DB.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		err = translateError(err)
		if err != ErrUserNotFound {
			logger.Log.WithError(err).WithField("email", email).Error("Failed to execute get user by email query")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		err = translateError(err)
		if err != ErrUserNotFound {
			logger.Log.WithError(err).WithField("user_id", id).Error("Failed to execute get user by ID query")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetAllUsers() ([]*model.User, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM users ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all users")
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan user row")
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// UpdateUser applies a partial patch to a user. Returns ErrUserNotFound when
// the id does not exist and ErrDuplicateEmail on a unique email conflict.
func (r *UserRepository) UpdateUser(id int, patch model.UserPatch) (*model.User, error) {
	log := logger.Log.WithFields(logrus.Fields{"user_id": id})
	log.Info("Executing query to update a user")

	var sets []string
	var args []interface{}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if patch.PasswordHash != nil {
		args = append(args, *patch.PasswordHash)
		sets = append(sets, fmt.Sprintf("password_hash = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING id, name, email, password_hash, created_at`,
		strings.Join(sets, ", "), len(args))

	user := &model.User{}
	err := r.DB.QueryRow(query, args...).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		err = translateError(err)
		if err != ErrUserNotFound && err != ErrDuplicateEmail {
			log.WithError(err).Error("Failed to execute update user query")
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by id. Returns ErrUserNotFound when no row was
// deleted.
func (r *UserRepository) DeleteUser(id int) error {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to delete a user")

	result, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete user query")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.WithError(err).Error("Failed to read affected rows after delete")
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
