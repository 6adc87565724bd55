package session

import "github.com/tomz197/survivors/internal/skill"

// checkLevelUp promotes the player when enough experience is banked and opens
// the upgrade menu if anything is left to pick. Reports whether the menu opened.
func (s *Session) checkLevelUp() bool {
	if s.player.Experience < s.player.Level*ExperiencePerLevel {
		return false
	}
	s.player.Level++
	s.player.Experience = 0
	s.log.Info("level up", "level", s.player.Level, "time", s.elapsed)

	if !s.skills.AnyAvailable() {
		return false
	}
	s.offer = skill.Draw(s.rng, s.skills.AppendAvailable(s.offerBuf[:0]), skill.OfferSize)
	s.state = StateLevelUp
	s.audio.PlayOneShot(SoundLevelUp)
	return true
}

// AvailableSkills lists every skill that can still be acquired this run.
func (s *Session) AvailableSkills() []skill.ID {
	return s.skills.AppendAvailable(nil)
}

// Offer returns the choices of the open upgrade menu, or nil when closed.
func (s *Session) Offer() []skill.ID {
	if s.state != StateLevelUp {
		return nil
	}
	return append([]skill.ID(nil), s.offer...)
}

// SkillMetadata returns the display name and description of id.
func (s *Session) SkillMetadata(id skill.ID) (skill.Meta, bool) {
	return skill.Metadata(id)
}

// AcceptSkill acquires id from the open offer and resumes play. Anything else
// (menu closed, id not offered, id maxed) is a no-op returning false.
func (s *Session) AcceptSkill(id skill.ID) bool {
	if s.state != StateLevelUp || !s.offered(id) {
		return false
	}
	if !s.skills.Acquire(id) {
		return false
	}
	s.applyLatches()
	s.closeMenu()
	s.log.Info("skill acquired", "skill", id.String(), "stacks", s.skills.Stacks(id))
	return true
}

// CancelUpgrade closes the upgrade menu without acquiring anything.
func (s *Session) CancelUpgrade() bool {
	if s.state != StateLevelUp {
		return false
	}
	s.closeMenu()
	return true
}

func (s *Session) offered(id skill.ID) bool {
	for _, o := range s.offer {
		if o == id {
			return true
		}
	}
	return false
}

func (s *Session) closeMenu() {
	s.offer = s.offerBuf[:0]
	s.state = StatePlaying
}

// win ends the run and records the score once per victory.
func (s *Session) win() {
	s.state = StateVictory
	s.offer = s.offerBuf[:0]
	s.log.Info("victory", "kills", s.stats.Kills, "level", s.player.Level)
	if s.scoreRecorded {
		return
	}
	s.scoreRecorded = true
	if s.cfg.Scores == nil {
		return
	}
	if err := s.cfg.Scores.Record(s.name, s.stats.Kills); err != nil {
		s.log.Warn("score not recorded", "name", s.name, "kills", s.stats.Kills, "err", err)
	}
}

// Restart begins a new run after death, keeping the player name.
func (s *Session) Restart() {
	s.reset()
	s.log.Info("run restarted")
}

// ResetFull begins a new run and forgets the player name.
func (s *Session) ResetFull() {
	s.reset()
	s.name = ""
}
