package fiscaldata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fiscaldata/fiscalclient"
	"github.com/vfg2006/econ-pulse-api/infrastructure/integrator/fiscaldata/mocks"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestFiscalDataService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{FiscalData: config.FiscalData{Timeout: time.Second}}, mockClient, nil)

	t.Run("debt to the penny", func(t *testing.T) {
		mockClient.EXPECT().
			GetRecords(gomock.Any(), debtToPennyQuery, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ fiscalclient.Query, dest any) error {
				records := dest.(*[]domain.DebtToPenny)
				*records = append(*records, domain.DebtToPenny{
					RecordDate:      "2024-05-10",
					TotalPublicDebt: domain.FlexFloat{Float: null.FloatFrom(3.4e13)},
				})
				return nil
			})

		got := service.DebtToPenny(context.Background())

		require.Len(t, got, 1)
		assert.Equal(t, "2024-05-10", got[0].RecordDate)
	})

	t.Run("failure yields an empty slice", func(t *testing.T) {
		mockClient.EXPECT().
			GetRecords(gomock.Any(), upcomingAuctionsQuery, gomock.Any()).
			Return(errors.New("fiscal data: returned 503"))

		got := service.UpcomingAuctions(context.Background())

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("interest rates and outstanding debt use their own queries", func(t *testing.T) {
		mockClient.EXPECT().GetRecords(gomock.Any(), avgInterestRatesQuery, gomock.Any()).Return(nil)
		mockClient.EXPECT().GetRecords(gomock.Any(), debtOutstandingQuery, gomock.Any()).Return(nil)

		assert.Empty(t, service.AverageInterestRates(context.Background()))
		assert.Empty(t, service.DebtOutstanding(context.Background()))
	})
}
