// Package content is the hand-authored list of entries shown on the page.
package content

import "github.com/jmj2097/portfolio/internal/portfolio"

// Media layout, relative to the page.
const (
	MediaPath  = "media/"
	ImagePath  = MediaPath + "images/"
	AudioPath  = MediaPath + "audio/"
	MusicPath  = AudioPath + "music/"
	SoundsPath = AudioPath + "sounds/"
)

var (
	BuffScriptSummary = `In the side-scrolling game called Geometry Dash, I created my own programming syntax using objects called triggers which I called "Buffscript". I used these triggers to make my own system for writing code which could be used to make much more complicated and advanced procedures possible. I created a game utilizing this syntax which took about 2 months and the final result was very well received gaining over 100k downloads on this server and receiving the rating "epic" which is a very prestigious award to be given to a level.
I learned many different skills from the experience. The most important skill is problem solving. Because this is just an editor inside of a game, there are many severe limitations. Being able to solve problems and figure out creative solutions was almost a given if I wanted to make anything in it. The other skill I learned from it was how to make an engaging game. Using feedback I received on my first level that I had posted using my syntax, I created a game which was very well received gaining over 100k downloads called Little Light.
I am currently building a raycasting engine within the game`

	MusicSummary = `I have composed digital music since I was in middle school for fun. I often make ambient or experimental songs. Here are some highlights:`

	SoundsSummary = `I have also created sounds for different projects for fun over the years. I usually make sounds through digital means.
One way I do this is by find existing sounds that are free to use, combining them with other sounds, synths, and effects to create the desired sound.
Another way I make sounds is through completely synthetic means such as retro/"8-bit" sounds. These are some sounds I have made:`
)

// Entries builds the catalogue in display order. Every call returns fresh
// values, so callers cannot affect each other.
func Entries() []portfolio.Entry {
	cover := portfolio.NewImage(ImagePath+"little-light.png", "Geometry Dash gameplay")

	return []portfolio.Entry{
		{
			Title:   "BuffScript",
			ID:      "buffscript",
			Summary: BuffScriptSummary,
			Cover:   &cover,
			Gallery: portfolio.NewGallery(
				portfolio.NewImage(ImagePath+"raycast.png", "Raycast"),
			),
		},
		{
			Title:   "Music",
			ID:      "generalMusic",
			Summary: MusicSummary,
			Links: portfolio.NewLinks(
				portfolio.NewLink("https://rebufff.newgrounds.com/audio", "All of my songs"),
			),
			Audio: portfolio.NewAudioGallery(
				portfolio.NewAudio(MusicPath+"whitespace.mp3", "[Ambient] Whitespace"),
				portfolio.NewAudio(MusicPath+"subnaupolis.mp3", "[Environmental] Subnaupolis"),
				portfolio.NewAudio(MusicPath+"resurrections-cover.mp3", "[Video Game] Resurrections by Lena Raine (Cover)"),
				portfolio.NewAudio(MusicPath+"low-light.mp3", "[Lo-fi] Low Light"),
				portfolio.NewAudio(MusicPath+"hidden-clockwork.mp3", "[Experimental] Hidden Clockwork"),
				portfolio.NewAudio(MusicPath+"anthem-of-the-lost.mp3", "[Build up] Anthem of the Lost"),
			),
		},
		{
			Title:   "Sound Effects",
			ID:      "generalSounds",
			Summary: SoundsSummary,
			Size:    portfolio.SizeWide,
			Links: portfolio.NewLinks(
				portfolio.NewLink("https://www.youtube.com/watch?v=Snk45mkwEE0", "Realistic Sounds Video Showcase").
					WithTooltip("Made for IGME-119 (2d asset production)", portfolio.TooltipDown),
				portfolio.NewLink("https://people.rit.edu/jmj2097/space/chrono-fling-old/", "Retro Sounds Web Game").
					WithTooltip("Does not work on mobile", portfolio.TooltipDown),
			),
			Audio: portfolio.NewAudioGallery(
				portfolio.NewAudio(SoundsPath+"wastes/Walk01.wav", "Adding effects to existing sounds\n\nWalk on sand 1"),
				portfolio.NewAudio(SoundsPath+"wastes/Walk02.wav", "\n\nWalk on sand 2"),
				portfolio.NewAudio(SoundsPath+"wastes/LandOnEnemy.wav", "Smash shell goo creature"),
				portfolio.NewAudio(SoundsPath+"wastes/jump.wav", "Jump off sand"),
				portfolio.NewAudio(SoundsPath+"wastes/LandOnGround.wav", "Land on sand"),
				portfolio.NewAudio(SoundsPath+"wastes/Hurt.wav", "Player gets hit"),
				portfolio.NewAudio(SoundsPath+"whitespace/Time.wav", "Creating sounds digitally\n\nSlow time"),
				portfolio.NewAudio(SoundsPath+"whitespace/Swipe.wav", "\n\nSwipe through menu"),
				portfolio.NewAudio(SoundsPath+"whitespace/Back.wav", "Bounce against wall"),
				portfolio.NewAudio(SoundsPath+"whitespace/Orb.wav", "Break powerup item"),
				portfolio.NewAudio(SoundsPath+"whitespace/Spike.wav", "Hit spike"),
			),
		},
	}
}
