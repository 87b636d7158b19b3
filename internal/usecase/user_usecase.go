package usecase

import (
	"context"
	"errors"
	"fmt"

	"enfermeria-api/internal/converter"
	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/domain/entity"
	"enfermeria-api/internal/domain/policy"
	"enfermeria-api/internal/domain/repository"
	"enfermeria-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrRoleNotFound = errors.New("role not found")

// UserUsecase is the access-controlled service for staff account
// management. Every operation authorizes first and performs no writes on
// denial.
type UserUsecase interface {
	GetAllUsers(ctx context.Context, actor policy.Actor) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, actor policy.Actor, id int) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, actor policy.Actor, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, actor policy.Actor, id int) error
	GetAllRoles(ctx context.Context, actor policy.Actor) ([]*dto.RoleResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) GetAllUsers(ctx context.Context, actor policy.Actor) (*dto.UserListResponse, error) {
	if err := policy.Authorize(actor, policy.ActionUserList, nil); err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	responses := converter.UsersToResponses(users)

	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, actor policy.Actor, id int) (*dto.UserResponse, error) {
	if err := policy.Authorize(actor, policy.ActionUserRead, nil); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) CreateUser(ctx context.Context, actor policy.Actor, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := policy.Authorize(actor, policy.ActionUserCreate, nil); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByID(tx, req.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	user := &entity.User{
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		RoleID:       req.RoleID,
		Activo:       &activo,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}
	user.Role = *role

	if err := u.auditService.LogCreate(ctx, tx, actorID(actor), entity.AuditActionUserCreate, "user", fmt.Sprint(user.ID), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, actor policy.Actor, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	// Role-membership gate before touching anything
	if err := policy.Authorize(actor, policy.ActionUserUpdate, nil); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Peer-administrator protection against the target's current role
	target := &policy.Target{UserID: user.ID, Role: user.Role.Nombre}
	if err := policy.Authorize(actor, policy.ActionUserUpdate, target); err != nil {
		return nil, err
	}

	oldValue := converter.UserToResponse(user)

	if req.RoleID != nil {
		role, err := u.roleRepo.FindByID(tx, *req.RoleID)
		if err != nil {
			u.log.Warnf("Failed to find role: %+v", err)
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}

		// Escalation prevention against the role being assigned
		if err := policy.Authorize(actor, policy.ActionUserAssignRole, &policy.Target{Role: role.Nombre}); err != nil {
			return nil, err
		}

		user.RoleID = role.ID
		user.Role = *role
	}

	if req.Nombre != nil && *req.Nombre != "" {
		user.Nombre = *req.Nombre
	}
	if req.Apellido != nil && *req.Apellido != "" {
		user.Apellido = *req.Apellido
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}
	if req.Activo != nil {
		user.Activo = req.Activo
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID(actor), entity.AuditActionUserUpdate, "user", fmt.Sprint(user.ID), oldValue, converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, actor policy.Actor, id int) error {
	if err := policy.Authorize(actor, policy.ActionUserDelete, nil); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// Peer-administrator protection and self-deletion ban
	target := &policy.Target{UserID: user.ID, Role: user.Role.Nombre}
	if err := policy.Authorize(actor, policy.ActionUserDelete, target); err != nil {
		return err
	}

	if err := u.userRepo.Delete(tx, user); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(actor), entity.AuditActionUserDelete, "user", fmt.Sprint(user.ID), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *userUsecase) GetAllRoles(ctx context.Context, actor policy.Actor) ([]*dto.RoleResponse, error) {
	if err := policy.Authorize(actor, policy.ActionRoleList, nil); err != nil {
		return nil, err
	}

	roles, err := u.roleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all roles: %+v", err)
		return nil, err
	}

	return converter.RolesToResponses(roles), nil
}

// actorID returns the actor id as an audit reference, nil for anonymous
// callers.
func actorID(actor policy.Actor) *int {
	if !actor.Authenticated {
		return nil
	}
	id := actor.ID
	return &id
}
