package core

import (
	"maps"
	"time"
)

type demoNote struct {
	title   string
	content string
}

var demoNotes = []demoNote{
	{
		title: "Welcome to Notepad!",
		content: `Welcome to your personal notepad application!

Here are some features you can explore:

✏️ Create and edit notes
🔍 Search through all your notes instantly
💾 Auto-save functionality keeps your work safe
📊 Real-time word and character count
⌨️ Shortcuts for quick actions

Your notes are automatically saved while you edit, so you never have to worry about losing your work!

Start creating your own notes with "new".`,
	},
	{
		title: "Shopping List",
		content: `🛒 Shopping List

Groceries:
- Milk
- Bread
- Eggs
- Cheese
- Apples
- Bananas

Household:
- Laundry detergent
- Paper towels
- Light bulbs

Remember to check the pantry before leaving!`,
	},
	{
		title: "Meeting Notes - Project Alpha",
		content: `📅 Meeting Notes - Project Alpha
Date: Today

Attendees:
- John Smith (Project Manager)
- Sarah Johnson (Developer)
- Mike Chen (Designer)

Key Points Discussed:
1. Timeline review - on track for Q3 delivery
2. Budget allocation approved
3. New feature requests from client
4. Testing phase scheduled for next month

Action Items:
□ Update project timeline (John)
□ Prepare design mockups (Mike)
□ Set up testing environment (Sarah)

Next meeting: Next Friday at 2 PM`,
	},
}

// demoStagger separates the timestamps of consecutive demo notes.
const demoStagger = 2 * time.Hour

// DemoEnvelope builds the collection written on first start.
func DemoEnvelope(now time.Time) Envelope {
	env := Envelope{Notes: make(map[string]Note, len(demoNotes)), NextID: 1}
	for i, d := range demoNotes {
		id := formatNoteID(env.NextID)
		env.NextID++
		at := now.Add(-time.Duration(i) * demoStagger)
		env.Notes[id] = Note{
			ID:           id,
			Title:        d.title,
			Content:      d.content,
			DateCreated:  at,
			DateModified: at,
		}
	}
	return env
}

func cloneNotes(notes map[string]Note) map[string]Note {
	if notes == nil {
		return make(map[string]Note)
	}
	return maps.Clone(notes)
}
