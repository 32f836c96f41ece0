package handler

import (
	"testing"

	"ifile/internal/core/domain"
	"ifile/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestInitializeCommandHandler_HandleReturnsErrorIfConfigExists(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	configRepository.On("ConfigExists").Return(true, nil)
	sut := InitializeCommandHandler{
		configRepository: configRepository,
	}

	result := sut.Handle()

	assert.NotNil(t, result)
	configRepository.AssertNotCalled(t, "SaveConfig")
}

func TestInitializeCommandHandler_HandleWritesDefaultConfigIfNoConfigExists(t *testing.T) {
	captureStdout(t)
	configRepository := new(testutil.MockConfigRepository)
	configRepository.On("ConfigExists").Return(false, nil)
	defaultConfig := domain.CreateDefaultConfig()
	configRepository.On("SaveConfig", &defaultConfig).Return(nil)
	sut := ProvideInitializeCommandHandler(configRepository)

	result := sut.Handle()

	assert.Nil(t, result)
	configRepository.AssertExpectations(t)
}
