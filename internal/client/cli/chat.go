package cli

import (
	"context"
	"os"
	"strings"
)

// Rooms lists the member's chat rooms.
func (a *App) Rooms(ctx context.Context) error {
	rooms, err := a.chat.Rooms(ctx)
	if err != nil {
		printlnFn("Could not load rooms:", err)
		return err
	}
	if len(rooms) == 0 {
		printlnFn("No rooms yet; 'chat' with a member id opens one")
		return nil
	}
	for _, r := range rooms {
		printlnFn(formatRoom(r))
	}
	return nil
}

// Chat opens a direct-message room with another member, prints the recent
// backlog, then streams live messages while forwarding typed lines. An
// empty line leaves the room.
func (a *App) Chat(ctx context.Context) error {
	participant, err := GetID(a.reader, "Enter member id to chat with", os.Stdout)
	if err != nil {
		return err
	}

	room, err := a.chat.OpenRoom(ctx, participant)
	if err != nil {
		printlnFn("Could not open room:", err)
		return err
	}

	history, err := a.chat.History(ctx, room.ID, 0, 20)
	if err != nil {
		printlnFn("Could not load history:", err)
		return err
	}
	for _, m := range history.Content {
		printlnFn(m.SenderID, ":", m.Content)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := a.chat.Watch(streamCtx, room.ID)
	if err != nil {
		printlnFn("Could not open stream:", err)
		return err
	}
	defer stream.Close()

	go func() {
		for m := range stream.Messages() {
			printlnFn(m.SenderID, ":", m.Content)
		}
	}()

	printlnFn("Connected; empty line to leave")
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return nil
		}
		if err := a.chat.Send(ctx, stream, room.ID, line); err != nil {
			printlnFn("Send failed:", err)
			return err
		}
	}
}
