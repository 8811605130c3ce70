package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/toyesterday/agenda/internal/domain"
	scheduleRepo "github.com/toyesterday/agenda/internal/infra/storage/schedule"
)

// resolveWorkingWindow определяет рабочее окно мастера на местную дату.
// Возвращает (окно, true) либо (_, false), если мастер в этот день не работает:
// нет записи расписания, is_available=false или не заполнены границы.
// "Не работает" - нормальный результат, не ошибка.
//
// Границы окна - местное время бизнеса; здесь они переводятся в UTC-моменты
// по правилам пояса на целевую дату (включая действующий в этот день
// переход на летнее время). Окно через местную полночь не поддерживается:
// start < end гарантируется при сохранении расписания.
func (uc *UseCase) resolveWorkingWindow(ctx context.Context, professionalID int64, localDay time.Time, weekday time.Weekday, loc *time.Location) (domain.Interval, bool, error) {
	entry, err := uc.scheduleRepo.GetByProfessionalAndWeekday(ctx, professionalID, int(weekday))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.Interval{}, false, nil
		}
		return domain.Interval{}, false, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !entry.IsWorking() {
		return domain.Interval{}, false, nil
	}

	start, err := entry.StartTime.OnDate(localDay, loc)
	if err != nil {
		return domain.Interval{}, false, fmt.Errorf("%w: invalid schedule start_time: %v", ErrInternal, err)
	}

	end, err := entry.EndTime.OnDate(localDay, loc)
	if err != nil {
		return domain.Interval{}, false, fmt.Errorf("%w: invalid schedule end_time: %v", ErrInternal, err)
	}

	return domain.Interval{Start: start.UTC(), End: end.UTC()}, true, nil
}
