package cli

import (
	"errors"
	"strings"

	"github.com/iudanet/drfriend/internal/chat"
)

// runChat печатает ответ помощника на сообщение
func (c *Cli) runChat(args []string) error {
	reply, ok := chat.Reply(strings.Join(args, " "))
	if !ok {
		return errors.New("message is empty")
	}
	c.io.Println(reply)
	return nil
}
