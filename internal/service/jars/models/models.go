package models

import (
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
)

// JarResponse ответ с данными банки
type JarResponse struct {
	ID            int64    `json:"id"`
	ExternalID    string   `json:"externalId"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	GoalAmount    *float64 `json:"goalAmount,omitempty"`
	CurrentAmount float64  `json:"currentAmount"`
	GoalReached   bool     `json:"goalReached"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JarListResponse ответ со списком банок
type JarListResponse struct {
	Jars []JarResponse `json:"jars"`
}

// ProviderJarResponse данные банки со стороны провайдера
// Суммы в основных единицах валюты
type ProviderJarResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Balance     float64  `json:"balance"`
	Goal        *float64 `json:"goal,omitempty"`
}

// FromDomainJar конвертирует domain модель в DTO
func FromDomainJar(j *domain.FundraisingJar) *JarResponse {
	if j == nil {
		return nil
	}

	return &JarResponse{
		ID:            j.ID,
		ExternalID:    j.ExternalID,
		Title:         j.Title,
		Description:   j.Description,
		GoalAmount:    j.GoalAmount,
		CurrentAmount: j.CurrentAmount,
		GoalReached:   j.IsGoalReached(),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

// FromDomainJarList конвертирует список domain моделей в DTO
func FromDomainJarList(jars []*domain.FundraisingJar) *JarListResponse {
	if jars == nil {
		return &JarListResponse{Jars: []JarResponse{}}
	}

	resp := &JarListResponse{
		Jars: make([]JarResponse, len(jars)),
	}

	for i, jar := range jars {
		if jarResp := FromDomainJar(jar); jarResp != nil {
			resp.Jars[i] = *jarResp
		}
	}

	return resp
}

// FromProviderJar конвертирует банку провайдера в DTO
// Баланс и цель провайдер отдаёт в минимальных единицах валюты
func FromProviderJar(j *monobank.Jar) *ProviderJarResponse {
	if j == nil {
		return nil
	}

	resp := &ProviderJarResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Balance:     domain.MinorUnitsToAmount(j.Balance),
	}

	if j.Goal != nil {
		goal := domain.MinorUnitsToAmount(*j.Goal)
		resp.Goal = &goal
	}

	return resp
}
