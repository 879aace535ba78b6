package usecase

import (
	"context"
	"net/http"
	"testing"

	"arcoiris/internal/domain/model"
	repo "arcoiris/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPartnerCreate_DuplicateCode(t *testing.T) {
	partners := new(partnerRepoMock)
	uc := NewAdminPartnerUsecase(partners)

	partners.On("Create", mock.Anything, mock.Anything).
		Return(model.Partner{}, repo.ErrDuplicate)

	_, err := uc.Create(context.Background(), PartnerInput{Name: "Tienda 22", Code: "TIENDA22"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "code already in use", he.Message)
}

func TestPartnerCreate_RejectsWhitespaceCode(t *testing.T) {
	partners := new(partnerRepoMock)
	uc := NewAdminPartnerUsecase(partners)

	_, err := uc.Create(context.Background(), PartnerInput{Name: "Tienda 22", Code: "TIENDA 22"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	partners.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
