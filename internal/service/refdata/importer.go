package refdata

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/logger"
)

// RateWriter is the slice of the store the importer needs.
type RateWriter interface {
	UpsertClassCodeRate(ctx context.Context, rate *domain.ClassCodeRate) (*domain.ClassCodeRate, error)
}

// Service backfills class-code rates from published state rate bulletins.
// A bulletin is an HTML page carrying a rate table with one row per class
// code: code, base rate per $100 payroll, hazard group, industry group.
type Service struct {
	store      RateWriter
	invalidate func()
}

// NewService builds the importer. invalidate is called after a successful
// import so cached reference lookups pick up the new rates; it may be nil.
func NewService(store RateWriter, invalidate func()) *Service {
	return &Service{store: store, invalidate: invalidate}
}

func (s *Service) ImportRateBulletin(
	ctx context.Context,
	bulletinURL, stateCode string,
	effectiveDate time.Time,
) ([]*domain.ClassCodeRate, error) {
	doc, err := s.fetchBulletin(ctx, bulletinURL)
	if err != nil {
		return nil, fmt.Errorf("fetch bulletin: %w", err)
	}

	parsed, err := parseRateTable(doc, stateCode, effectiveDate)
	if err != nil {
		return nil, fmt.Errorf("parse bulletin: %w", err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("no rate rows found in bulletin %s", bulletinURL)
	}

	imported := make([]*domain.ClassCodeRate, 0, len(parsed))
	importedMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	for _, rate := range parsed {
		rate := rate
		eg.Go(func() error {
			saved, err := s.store.UpsertClassCodeRate(egCtx, rate)
			if err != nil {
				logger.Errorf(ctx, "UpsertClassCodeRate: %s", err.Error())
				return fmt.Errorf("upsert class code %s-%s: %w", rate.StateCode, rate.ClassCode, err)
			}

			importedMx.Lock()
			defer importedMx.Unlock()
			imported = append(imported, saved)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	logger.Infof(ctx, "imported %d class code rates for %s from %s", len(imported), stateCode, bulletinURL)

	if s.invalidate != nil {
		s.invalidate()
	}

	return imported, nil
}

func (s *Service) fetchBulletin(ctx context.Context, bulletinURL string) (*goquery.Document, error) {
	var doc *goquery.Document

	err := backoff.Retry(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, bulletinURL, nil)
			if err != nil {
				return backoff.Permanent(err)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			doc, err = goquery.NewDocumentFromReader(resp.Body)
			if err != nil {
				return fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 3), ctx),
	)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func parseRateTable(doc *goquery.Document, stateCode string, effectiveDate time.Time) ([]*domain.ClassCodeRate, error) {
	var (
		rates    []*domain.ClassCodeRate
		parseErr error
	)

	doc.Find("table.rate-table tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			// header or separator row
			return true
		}

		classCode := strings.TrimSpace(cells.Eq(0).Text())
		if classCode == "" {
			return true
		}

		rateText := strings.ReplaceAll(strings.TrimSpace(cells.Eq(1).Text()), ",", "")
		baseRate, err := decimal.NewFromString(rateText)
		if err != nil {
			parseErr = fmt.Errorf("class code %s: bad rate %q: %w", classCode, rateText, err)
			return false
		}

		rate := &domain.ClassCodeRate{
			StateCode:     stateCode,
			ClassCode:     classCode,
			EffectiveDate: effectiveDate,
			BaseRate:      baseRate.InexactFloat64(),
			HazardGroup:   "A",
			IndustryGroup: "Unknown",
		}
		if cells.Length() > 2 {
			if hazard := strings.TrimSpace(cells.Eq(2).Text()); hazard != "" {
				rate.HazardGroup = hazard
			}
		}
		if cells.Length() > 3 {
			if industry := strings.TrimSpace(cells.Eq(3).Text()); industry != "" {
				rate.IndustryGroup = industry
			}
		}

		rates = append(rates, rate)
		return true
	})

	return rates, parseErr
}
