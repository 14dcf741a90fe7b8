package effect

import (
	"time"

	"github.com/gonewx/startrail/pkg/config"
	"github.com/gonewx/startrail/pkg/utils"
)

// ShouldSpawnStar 星星节流判断
//
// 满足任一条件即生成新星：
//   - 距离上一颗星的位置 >= MinimumDistanceBetweenStars
//   - 距离上一颗星的时间 >  MinimumTimeBetweenStars
func ShouldSpawnStar(cfg config.TrailConfig, state TrackingState, current utils.Point, now time.Time) bool {
	movedFarEnough := utils.Distance(state.LastStarPosition, current) >= cfg.MinimumDistanceBetweenStars
	enoughTimePassed := utils.Elapsed(state.LastStarTimestamp, now) > cfg.MinimumTimeBetweenStars
	return movedFarEnough || enoughTimePassed
}
