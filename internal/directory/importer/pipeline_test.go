package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"askthem/internal/directory/metrics"
	"askthem/internal/directory/models"
	"askthem/internal/directory/ports/mocks"
	"askthem/internal/directory/store/person"
	"askthem/internal/platform/lock"
	id "askthem/pkg/domain"
	dErrors "askthem/pkg/domain-errors"
	"askthem/pkg/requestcontext"
)

var nowForTest = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

type PipelineSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	source   *mocks.MockOfficeholderSource
	details  *mocks.MockDetailRetriever
	store    *person.InMemory
	metrics  *metrics.Metrics
	pipeline *Pipeline
	ctx      context.Context
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func (s *PipelineSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockOfficeholderSource(s.ctrl)
	s.details = mocks.NewMockDetailRetriever(s.ctrl)
	s.store = person.NewInMemory()
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.ctx = requestcontext.WithTime(context.Background(), nowForTest)

	var err error
	s.pipeline, err = NewPipeline(s.store, lock.NewMemory(),
		WithSource(s.source),
		WithDetailRetriever(s.details),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
	s.Require().NoError(err)
}

func (s *PipelineSuite) TearDownTest() {
	s.ctrl.Finish()
}

func legislators(names ...string) []models.RawAttributes {
	out := make([]models.RawAttributes, len(names))
	for i, n := range names {
		out[i] = models.RawAttributes{"full_name": n, "active": true}
	}
	return out
}

func (s *PipelineSuite) TestNew() {
	s.Run("nil store returns error", func() {
		_, err := NewPipeline(nil, lock.NewMemory())
		s.ErrorContains(err, "person store is required")
	})
	s.Run("nil locker returns error", func() {
		_, err := NewPipeline(s.store, nil)
		s.ErrorContains(err, "locker is required")
	})
}

func (s *PipelineSuite) TestImportsInSourceOrder() {
	s.source.EXPECT().FetchOfficeholders(gomock.Any(), id.JurisdictionKey("ca")).
		Return(legislators("Zed", "Amy", "Bob"), nil)
	s.details.EXPECT().Retrieve(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	res, err := s.pipeline.LoadForJurisdiction(s.ctx, "ca", nil, nil)
	s.Require().NoError(err)
	s.False(res.AlreadyLoaded)
	s.Require().Len(res.People, 3)
	s.Equal("Zed", res.People[0].FullName)
	s.Equal("Amy", res.People[1].FullName)
	s.Equal("Bob", res.People[2].FullName)

	for _, p := range res.People {
		s.False(p.ID.IsNil())
		s.Equal("ca", p.Jurisdiction)
		s.Equal(models.SubtypeStateLegislator, p.Type)
		s.Equal(nowForTest, p.CreatedAt)
	}
	s.NotEqual(res.People[0].ID, res.People[1].ID)

	n, err := s.store.CountByJurisdiction(s.ctx, "ca")
	s.Require().NoError(err)
	s.Equal(3, n)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ImportsTotal.WithLabelValues("imported")))
	s.Equal(3.0, testutil.ToFloat64(s.metrics.PeopleImported))
}

func (s *PipelineSuite) TestSecondImportIsNoOp() {
	s.source.EXPECT().FetchOfficeholders(gomock.Any(), gomock.Any()).Return(legislators("Amy", "Bob"), nil).Times(1)
	s.details.EXPECT().Retrieve(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := s.pipeline.LoadForJurisdiction(s.ctx, "ca", nil, nil)
	s.Require().NoError(err)

	res, err := s.pipeline.LoadForJurisdiction(s.ctx, "ca", nil, nil)
	s.Require().NoError(err)
	s.True(res.AlreadyLoaded)
	s.Empty(res.People)

	n, err := s.store.CountByJurisdiction(s.ctx, "ca")
	s.Require().NoError(err)
	s.Equal(2, n)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ImportsTotal.WithLabelValues("already_loaded")))
}

func (s *PipelineSuite) TestConcurrentImportsRunOnce() {
	s.source.EXPECT().FetchOfficeholders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, id.JurisdictionKey) ([]models.RawAttributes, error) {
			time.Sleep(10 * time.Millisecond)
			return legislators("Amy", "Bob"), nil
		}).Times(1)
	s.details.EXPECT().Retrieve(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.pipeline.LoadForJurisdiction(s.ctx, "ca", nil, nil)
			s.NoError(err)
		}()
	}
	wg.Wait()

	n, err := s.store.CountByJurisdiction(s.ctx, "ca")
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *PipelineSuite) TestExplicitSourceAndAdapter() {
	other := mocks.NewMockOfficeholderSource(s.ctrl)
	other.EXPECT().FetchOfficeholders(gomock.Any(), id.JurisdictionKey("tx")).
		Return([]models.RawAttributes{{"leg_id": "TXL000001", "full_name": "Tex", "chamber": "lower"}}, nil)
	s.details.EXPECT().Retrieve(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.pipeline.LoadForJurisdiction(s.ctx, "tx", other, OpenStatesAdapter{})
	s.Require().NoError(err)
	s.Require().Len(res.People, 1)
	s.Equal("TXL000001", res.People[0].Slug)
	s.Equal("state_representative", res.People[0].PoliticalPosition)
}

func (s *PipelineSuite) TestFailuresAbortTheBatch() {
	s.Run("fetch failure", func() {
		s.source.EXPECT().FetchOfficeholders(gomock.Any(), id.JurisdictionKey("ny")).Return(nil, errors.New("timeout"))
		_, err := s.pipeline.LoadForJurisdiction(s.ctx, "ny", nil, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	s.Run("adapter failure keeps earlier records", func() {
		s.source.EXPECT().FetchOfficeholders(gomock.Any(), id.JurisdictionKey("or")).Return(legislators("Amy", "Bob", "Cy"), nil)
		s.details.EXPECT().Retrieve(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		adapter := AdapterFunc(func(raw models.RawAttributes) (models.Attributes, error) {
			if raw["full_name"] == "Bob" {
				return models.Attributes{}, errors.New("bad record")
			}
			return IdentityAdapter{}.Adapt(raw)
		})
		res, err := s.pipeline.LoadForJurisdiction(s.ctx, "or", nil, adapter)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "record 1")
		s.Len(res.People, 1)

		n, _ := s.store.CountByJurisdiction(s.ctx, "or")
		s.Equal(1, n)
	})

	s.Run("detail failure", func() {
		s.source.EXPECT().FetchOfficeholders(gomock.Any(), id.JurisdictionKey("wa")).Return(legislators("Amy", "Bob"), nil)
		s.details.EXPECT().Retrieve(gomock.Any(), gomock.Any()).Return(errors.New("detail store down"))

		_, err := s.pipeline.LoadForJurisdiction(s.ctx, "wa", nil, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Equal(3.0, testutil.ToFloat64(s.metrics.ImportsTotal.WithLabelValues("failed")))
}

func (s *PipelineSuite) TestRejectsMissingJurisdiction() {
	_, err := s.pipeline.LoadForJurisdiction(s.ctx, "", nil, nil)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
