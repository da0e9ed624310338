package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/StockScan-api/internal/application/dto"
	"github.com/jhoicas/StockScan-api/internal/domain"
	"github.com/jhoicas/StockScan-api/internal/domain/entity"
	"github.com/jhoicas/StockScan-api/internal/domain/repository"
	"github.com/jhoicas/StockScan-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase compuerta de autenticación: resuelve un código secreto compartido
// al almacenista que lo posee y emite el token de sesión.
//
// El diseño original comparaba códigos en claro contra una lista fija; aquí el
// registro guarda hashes bcrypt y la comparación es de tiempo constante por
// entrada, conservando el contrato "código secreto → almacenista".
type AuthUseCase struct {
	registry repository.WarehousemanRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(registry repository.WarehousemanRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{registry: registry, jwtCfg: jwtCfg}
}

// Login busca el almacenista cuyo hash corresponde al código presentado.
// Los códigos son únicos, así que la primera coincidencia gana. Sin coincidencia
// devuelve domain.ErrAuthMismatch (recuperable: el usuario reintenta el código).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.SecretCode == "" {
		return nil, domain.ErrInvalidInput
	}
	registry, err := uc.registry.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := match(in.SecretCode, registry)
	if matched == nil {
		return nil, domain.ErrAuthMismatch
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, matched.ID, matched.WarehouseID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Warehouseman: dto.WarehousemanResponse{
			ID:          matched.ID,
			Name:        matched.Name,
			City:        matched.City,
			WarehouseID: matched.WarehouseID,
		},
	}, nil
}

// match recorre el registro completo comparando contra cada hash; no corta en
// la primera entrada descartada para no filtrar por tiempo cuántas entradas
// había antes de la coincidencia.
func match(code string, registry []*entity.Warehouseman) *entity.Warehouseman {
	var found *entity.Warehouseman
	for _, w := range registry {
		if bcrypt.CompareHashAndPassword([]byte(w.SecretHash), []byte(code)) == nil && found == nil {
			found = w
		}
	}
	return found
}
