package platformer

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/world"

// Pose is the action part of an animation frame.
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk1
	PoseWalk2
	PoseWalk3
	PoseJump
	PoseCrouch
	PoseFire
	PoseTransform
	poseCount
)

// Form is the power part of an animation frame.
type Form int

const (
	FormSmall Form = iota
	FormTall
	FormFire
)

// String returns the HUD label of the form.
func (f Form) String() string {
	switch f {
	case FormTall:
		return "Tall"
	case FormFire:
		return "Fire"
	default:
		return "Small"
	}
}

// walkTicks is how many ticks each walk frame is held.
const walkTicks = 6

// playerForm derives the form from the power flags.
func playerForm(pl *world.Player) Form {
	switch {
	case pl.FireForm:
		return FormFire
	case pl.Tall:
		return FormTall
	default:
		return FormSmall
	}
}

// playerPose derives the pose from the action flags.
func playerPose(pl *world.Player, tick uint64) Pose {
	switch {
	case pl.Transforming:
		return PoseTransform
	case pl.Crouching:
		return PoseCrouch
	case pl.Firing:
		return PoseFire
	case !pl.OnSurface:
		return PoseJump
	case pl.Walking || pl.Velocity.X != 0:
		return PoseWalk1 + Pose((tick/walkTicks)%3) //#nosec G115 -- bounded by 3
	default:
		return PoseIdle
	}
}

// selectFrame writes the animation frame matching the player's current
// form and action. It is the only writer of Player.Frame.
func selectFrame(pl *world.Player, tick uint64) {
	pl.Frame = int(playerForm(pl))*int(poseCount) + int(playerPose(pl, tick))
}

// splitFrame returns the form and pose encoded in a frame index.
func splitFrame(frame int) (Form, Pose) {
	return Form(frame / int(poseCount)), Pose(frame % int(poseCount))
}
